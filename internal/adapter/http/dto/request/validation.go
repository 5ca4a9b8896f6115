package request

import (
	"errors"
	"strings"

	"vhc_service/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the custom binding tags to gin's validator engine.
// It must run once before the router serves requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		"decimal":      isDecimal,
		"vhc_decision": isDecision,
		"auth_method":  isAuthMethod,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func isDecimal(fl validator.FieldLevel) bool {
	_, err := parseDecimal(fl.Field().String())
	return err == nil
}

func isDecision(fl validator.FieldLevel) bool {
	return entities.Decision(fl.Field().String()).IsValid()
}

func isAuthMethod(fl validator.FieldLevel) bool {
	return entities.AuthorizationMethod(fl.Field().String()).IsValid()
}

// ValidationDetails maps each failed field to the tag that rejected it.
// Errors that are not validator errors (malformed JSON) yield nil.
func ValidationDetails(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// parseDecimal rejects values whose exponent or magnitude the pricing code
// cannot handle, before anything rescales them.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if !entities.DecimalInRange(d) {
		return decimal.Zero, entities.ErrValueOutOfRange
	}
	return d, nil
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return parseDecimal(s)
}
