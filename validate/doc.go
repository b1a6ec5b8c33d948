// Package validate implements schema validation for OpenIntent documents.
//
// The validator takes an arbitrary decoded value (the JSON data model:
// objects, arrays, strings, numbers, booleans, null) and either returns the
// typed document form from the schema package or a ValidationError carrying
// every violation found. Validation never stops at the first defect: the
// whole document is checked in one pass so an author can fix every problem
// in a single edit round.
//
// Validation is a pure function of its input. It performs no I/O, does not
// log, and does not mutate the value it is given, so it is safe to call
// concurrently.
//
//	doc, err := validate.Validate(decoded)
//	if err != nil {
//	    if verr, ok := validate.AsValidationError(err); ok {
//	        for _, v := range verr.Violations {
//	            fmt.Printf("%s: %s\n", v.Path, v.Message)
//	        }
//	    }
//	    return err
//	}
//	// doc is fully typed and shape-safe for downstream consumption.
package validate
