// Package formsync keeps the state of a rendered form in memory and converts
// between that state and flat name to values mappings.
//
// A Form is built from a model.FormModel. Populate pushes values into the
// controls the way the page displays them, Extract reads them back the way a
// browser would submit them, Submit applies an actual browser submission and
// Clear resets everything, hidden controls included. Control kinds are taken
// from the form declaration; values are never inspected to guess them.
package formsync
