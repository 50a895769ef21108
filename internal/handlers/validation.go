package handlers

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// symbolPattern accepts exchange tickers such as AAPL, BRK.B, BTC-USD or ^GSPC.
var symbolPattern = regexp.MustCompile(`^[A-Za-z0-9.\-^=]{1,15}$`)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// registerValidators adds the custom binding tags used by the DTOs.
func registerValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("symbol", validateSymbol); err != nil {
			registerValidatorsErr = fmt.Errorf("failed to register symbol validator: %w", err)
		}
	})
	return registerValidatorsErr
}

func validateSymbol(fl validator.FieldLevel) bool {
	return symbolPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
