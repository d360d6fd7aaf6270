// Package web serves the server-rendered JTube form and results page.
//
// Each rendered form carries an opaque form ID. Submissions with the same ID
// share one Controller, which refuses a second submission while the first is
// still in flight.
package web
