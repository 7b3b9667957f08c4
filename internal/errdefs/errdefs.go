package errdefs

import "fmt"

// BadRequestError is the root of the taxonomy: the request as a whole was
// not valid. Name identifies the offending item.
type BadRequestError struct {
	Name    string
	Message string
}

// NewBadRequest builds a BadRequestError. An empty message is replaced by
// the default one.
func NewBadRequest(name, message string) *BadRequestError {
	if message == "" {
		message = "The request was not valid"
	}
	return &BadRequestError{Name: name, Message: message}
}

// Error implements the error interface.
func (e *BadRequestError) Error() string { return e.Message }

func (e *BadRequestError) badRequest() {}

// BadParameterError reports that a specific request parameter was not valid.
type BadParameterError struct {
	BadRequestError
}

// NewBadParameter builds a BadParameterError for the named parameter.
func NewBadParameter(name, message string) *BadParameterError {
	if message == "" {
		message = fmt.Sprintf("The request parameter %s was not valid", name)
	}
	return &BadParameterError{BadRequestError{Name: name, Message: message}}
}

func (e *BadParameterError) badParameter() {}

// MissingParameterError reports that a required parameter could not be
// resolved by any context source.
type MissingParameterError struct {
	BadParameterError
}

// NewMissingParameter builds a MissingParameterError for the named parameter.
func NewMissingParameter(name string) *MissingParameterError {
	return &MissingParameterError{BadParameterError{BadRequestError{
		Name:    name,
		Message: fmt.Sprintf("The request parameter %s is required but could not be found!", name),
	}}}
}

func (e *MissingParameterError) missingParameter() {}

// BadDatasetError reports that an input dataset was not valid. Name holds
// the dataset name.
type BadDatasetError struct {
	BadRequestError
}

// NewBadDataset builds a BadDatasetError for the named dataset.
func NewBadDataset(datasetName, message string) *BadDatasetError {
	if message == "" {
		message = fmt.Sprintf("The input dataset %s was not valid", datasetName)
	}
	return &BadDatasetError{BadRequestError{Name: datasetName, Message: message}}
}

// DatasetName returns the name of the offending dataset.
func (e *BadDatasetError) DatasetName() string { return e.Name }

func (e *BadDatasetError) badDataset() {}

// DatasetFieldError reports that a specific field of an input dataset was
// not valid.
type DatasetFieldError struct {
	BadDatasetError
	FieldName string
}

// NewDatasetField builds a DatasetFieldError for the named dataset field.
func NewDatasetField(datasetName, fieldName, message string) *DatasetFieldError {
	if message == "" {
		message = fmt.Sprintf("The field %s was not valid for input dataset %s", fieldName, datasetName)
	}
	return &DatasetFieldError{
		BadDatasetError: BadDatasetError{BadRequestError{Name: datasetName, Message: message}},
		FieldName:       fieldName,
	}
}

// MissingDatasetFieldError reports that a required dataset field is absent.
type MissingDatasetFieldError struct {
	DatasetFieldError
}

// NewMissingDatasetField builds a MissingDatasetFieldError for the named
// dataset field.
func NewMissingDatasetField(datasetName, fieldName string) *MissingDatasetFieldError {
	return &MissingDatasetFieldError{DatasetFieldError{
		BadDatasetError: BadDatasetError{BadRequestError{
			Name:    datasetName,
			Message: fmt.Sprintf("The field %s on input dataset %s is required but could not be found!", fieldName, datasetName),
		}},
		FieldName: fieldName,
	}}
}
