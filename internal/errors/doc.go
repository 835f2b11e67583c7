// Package errors provides structured, actionable error messages for daisy.
//
// Every failure the toolchain reports to a user (bad daisy.yaml, unknown
// component, failed upload) is a *DaisyError carrying a code, a category,
// a short message and optionally a file location, a hint and an example.
// Components in pkg/daisy never return errors; only the infrastructure
// around them does.
//
// # Error Codes
//
//   - E1xx: configuration (daisy.yaml)
//   - E2xx: component catalog
//   - E3xx: rendering and gallery output
//   - E4xx: preview server
//   - E5xx: publishing
//
// # Usage
//
//	err := errors.New("E105").
//	    WithLocation("daisy.yaml", 3, 10).
//	    WithDetail(`theme "solarized" is not a built-in theme`)
//
//	fmt.Print(err.Format())
//	// ERROR E105: Unknown theme
//	//
//	//   daisy.yaml:3:10
//	//
//	//      1 │ site:
//	//      2 │   title: Gallery
//	//   →  3 │   theme: solarized
//	//        │          ^
//	//
//	//   theme "solarized" is not a built-in theme
//	//
//	//   Hint: Run 'daisy themes' to list valid names.
package errors
