package segment

import "github.com/pkg/errors"

// ErrMappingUnsupported is returned from NewMapped on platforms without anonymous memory mappings
var ErrMappingUnsupported = errors.New("memory mapped heap segments are not supported on this platform")
