package chunk

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// chunkerConfig mirrors the numeric chunker options in validateable form.
// The delimiters-versus-pattern rules depend on the active mode and are
// checked directly.
type chunkerConfig struct {
	Size int `validate:"gt=0"`
}

// splitterConfig holds the exhaustive splitter knobs.
type splitterConfig struct {
	Delimiters []byte `validate:"required,min=1"`
	MinChars   int    `validate:"gte=0"`
}

func (o *Options) validate() error {
	if o.patternMode {
		if len(o.pattern) == 0 {
			return ErrEmptyPattern
		}
	} else if len(o.delimiters) == 0 {
		return ErrNoDelimiters
	}
	if err := validate.Struct(chunkerConfig{Size: o.size}); err != nil {
		return translateConfigErr(err, map[string]error{
			"Size": ErrInvalidSize,
		})
	}
	return nil
}

func validateSplit(delimiters []byte, include IncludeDelim, minChars int) error {
	if include < IncludeDelimPrev || include > IncludeDelimNone {
		return fmt.Errorf("%w: %d", ErrInvalidIncludeDelim, int(include))
	}
	cfg := splitterConfig{Delimiters: delimiters, MinChars: minChars}
	if err := validate.Struct(cfg); err != nil {
		return translateConfigErr(err, map[string]error{
			"Delimiters": ErrNoDelimiters,
			"MinChars":   ErrInvalidMinChars,
		})
	}
	return nil
}

// translateConfigErr maps validator field errors onto the package's sentinel
// errors so callers can test with errors.Is.
func translateConfigErr(err error, fields map[string]error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if sentinel, ok := fields[fe.StructField()]; ok {
				return sentinel
			}
		}
	}
	return fmt.Errorf("chunk: invalid configuration: %w", err)
}
