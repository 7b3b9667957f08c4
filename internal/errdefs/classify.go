package errdefs

import "errors"

// The marker interfaces below are implemented by unexported methods on the
// taxonomy types. Embedding propagates them, so a MissingDatasetFieldError
// still classifies as a bad request without any type switching at call sites.

type badRequest interface{ badRequest() }

type badParameter interface{ badParameter() }

type missingParameter interface{ missingParameter() }

type badDataset interface{ badDataset() }

// IsBadRequest reports whether err belongs to the request-shape taxonomy.
func IsBadRequest(err error) bool {
	var target badRequest
	return errors.As(err, &target)
}

// IsBadParameter reports whether err concerns a specific request parameter.
func IsBadParameter(err error) bool {
	var target badParameter
	return errors.As(err, &target)
}

// IsMissingParameter reports whether err is a missing required parameter.
func IsMissingParameter(err error) bool {
	var target missingParameter
	return errors.As(err, &target)
}

// IsBadDataset reports whether err concerns an input dataset.
func IsBadDataset(err error) bool {
	var target badDataset
	return errors.As(err, &target)
}
