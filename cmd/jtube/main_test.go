package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/jtube/internal/domain"
	"github.com/phrazzld/jtube/internal/generation"
	"github.com/phrazzld/jtube/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, gen generation.Generator, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, gen)
	return code, stdout.String(), stderr.String()
}

func TestRunPrintsResult(t *testing.T) {
	gen := mocks.NewMockGeneratorWithDefaultResult()

	code, out, _ := runCLI(t, gen, "-title", "Elden Ring", "-type", "Walkthrough", "-lang", "Indonesian")
	require.Equal(t, exitOK, code)

	assert.True(t, strings.HasPrefix(out, generation.TitlesHeader+"\n1. Elden Ring"))
	assert.Contains(t, out, generation.DescriptionHeader+"\nJoin the adventure")
	assert.Contains(t, out, generation.TagsHeader+"\nelden ring, walkthrough, soulslike")
	assert.Contains(t, out, "- Elden Ring Wiki <https://eldenring.wiki.fextralife.com>")

	req, ok := gen.LastRequest()
	require.True(t, ok)
	assert.Equal(t, domain.ContentTypeWalkthrough, req.ContentType)
	assert.Equal(t, "Indonesian", req.Language)
}

func TestRunJSON(t *testing.T) {
	code, out, _ := runCLI(t, mocks.NewMockGeneratorWithDefaultResult(), "-title", "Elden Ring", "-json")
	require.Equal(t, exitOK, code)

	var result domain.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Titles, 2)
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		gen      generation.Generator
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing title",
			gen:      mocks.NewMockGeneratorWithDefaultResult(),
			args:     []string{},
			wantCode: exitUsage,
			wantErr:  "game title cannot be empty",
		},
		{
			name:     "bad content type",
			gen:      mocks.NewMockGeneratorWithDefaultResult(),
			args:     []string{"-title", "Hades", "-type", "Unboxing"},
			wantCode: exitUsage,
			wantErr:  "valid: NoCommentary",
		},
		{
			name:     "unknown flag",
			gen:      mocks.NewMockGeneratorWithDefaultResult(),
			args:     []string{"-nope"},
			wantCode: exitUsage,
		},
		{
			name:     "funding",
			gen:      mocks.MockGeneratorNeedingFunding(""),
			args:     []string{"-title", "Hades"},
			wantCode: exitFunding,
			wantErr:  generation.DefaultDonationURL,
		},
		{
			name:     "failure",
			gen:      mocks.NewMockGeneratorWithError(generation.NewFailedError(errors.New("socket hang up"))),
			args:     []string{"-title", "Hades"},
			wantCode: exitFailed,
			wantErr:  "socket hang up",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tc.gen, tc.args...)
			assert.Equal(t, tc.wantCode, code)
			assert.Contains(t, stderr, tc.wantErr)
		})
	}
}

func TestContentTypeIDs(t *testing.T) {
	assert.Equal(t,
		"NoCommentary, Walkthrough, Gameplay, FullGame, StoryMode, TipsAndTricks, Highlights, Speedrun, Other",
		contentTypeIDs())
}
