package utils

import (
	"medipos-service/internal/app/models"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("staff_role", validateStaffRole)
	validate.RegisterValidation("payment_type", validatePaymentType)
	validate.RegisterValidation("password", validatePassword)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == string(models.GenderMale) || value == string(models.GenderFemale) || value == string(models.GenderOther)
}

func validateStaffRole(fl validator.FieldLevel) bool {
	return models.StaffRoles[models.StaffRole(fl.Field().String())]
}

func validatePaymentType(fl validator.FieldLevel) bool {
	switch models.PaymentType(fl.Field().String()) {
	case models.PaymentTypeConsultation, models.PaymentTypeLab, models.PaymentTypePharmacy, models.PaymentTypeCombined:
		return true
	}
	return false
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(`[!@#\$%\^&\*\(\)_\+\-=\[\]\{\};:'",<>\./\?\\|]`).MatchString(password)
	hasUppercase := regexp.MustCompile(`[A-Z]`).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}
