// Package mocks provides centralized mock implementations for testing.
//
// The mocks here stand in for the content generator so the HTTP and web
// layers can be tested without a model credential.
//
// Usage:
//
// Import the mocks package in your test file and create the required mock:
//
//	import "github.com/phrazzld/jtube/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gen := &mocks.MockGenerator{
//	        GenerateFn: func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
//	            return &domain.GenerationResult{Titles: []string{"A title"}}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Track calls behind a mutex so the mock is safe in parallel tests
package mocks
