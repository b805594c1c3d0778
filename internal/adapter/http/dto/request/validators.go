package request

import (
	"sync"

	"workshop_jobs/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the domain binding tags to gin's validator:
// role accepts a known account role and job_status a known job status.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			_, ok := entities.ParseRole(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("job_status", func(fl validator.FieldLevel) bool {
			_, ok := entities.ParseJobStatus(fl.Field().String())
			return ok
		})
	})
}
