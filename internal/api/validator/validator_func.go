package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	mobileRegex  = `^[6-9]\d{9}$`
	panRegex     = `^[A-Z]{5}[0-9]{4}[A-Z]$`
	aadhaarRegex = `^\d{12}$`
	ifscRegex    = `^[A-Z]{4}0[A-Z0-9]{6}$`
)

const (
	MobileTag  = "mobile"
	PANTag     = "pan"
	AadhaarTag = "aadhaar"
	IFSCTag    = "ifsc"
)

var (
	mobilePattern  = regexp.MustCompile(mobileRegex)
	panPattern     = regexp.MustCompile(panRegex)
	aadhaarPattern = regexp.MustCompile(aadhaarRegex)
	ifscPattern    = regexp.MustCompile(ifscRegex)
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	MobileTag:  ValidateMobile,
	PANTag:     ValidatePAN,
	AadhaarTag: ValidateAadhaar,
	IFSCTag:    ValidateIFSC,
}

func ValidateMobile(fl validator.FieldLevel) bool {
	return mobilePattern.MatchString(fl.Field().String())
}

func ValidatePAN(fl validator.FieldLevel) bool {
	return panPattern.MatchString(fl.Field().String())
}

func ValidateAadhaar(fl validator.FieldLevel) bool {
	return aadhaarPattern.MatchString(fl.Field().String())
}

func ValidateIFSC(fl validator.FieldLevel) bool {
	return ifscPattern.MatchString(fl.Field().String())
}
