package domain

import "errors"

var (
	// ErrFileNotFound reports that a required input file is missing or unreadable.
	ErrFileNotFound = errors.New("file not found")

	// ErrPrerequisiteMissing reports that an artifact produced by an earlier
	// step, such as the symbol map, is absent.
	ErrPrerequisiteMissing = errors.New("prerequisite missing")

	// ErrForbiddenImports reports that the legacy import guard found violations.
	ErrForbiddenImports = errors.New("forbidden package imports of transitional files")

	// ErrInvalidExportMap reports that the package manifest export map failed validation.
	ErrInvalidExportMap = errors.New("export map validation failed")
)
