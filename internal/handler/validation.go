package handler

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/analysis"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/domain"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the domain binding tags to gin's validator engine
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("event_type", validateEventType)
		_ = v.RegisterValidation("attribution_model", validateAttributionModel)
	})
}

func validateEventType(fl validator.FieldLevel) bool {
	return domain.EventType(fl.Field().String()).IsValid()
}

func validateAttributionModel(fl validator.FieldLevel) bool {
	_, err := analysis.ParseModel(fl.Field().String())
	return err == nil
}
