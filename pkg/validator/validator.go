package validator

import (
	"github.com/go-playground/validator/v10"
)

const (
	MaxRadiusKM = 50.0
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

func RegisterCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("lat", validateLat)
	_ = v.RegisterValidation("lng", validateLng)
	_ = v.RegisterValidation("radius_km", validateRadiusKM)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// radius must be strictly positive and at most MaxRadiusKM
func validateRadiusKM(fl validator.FieldLevel) bool {
	radius := fl.Field().Float()
	return radius > 0 && radius <= MaxRadiusKM
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
