package validator

import (
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	snowflakePattern   = regexp.MustCompile(`^[0-9]{1,20}$`)
	settingNamePattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)
)

// IsSettingName reports whether s can be used as a settings category or key.
func IsSettingName(s string) bool {
	return settingNamePattern.MatchString(s)
}

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'snowflake': a Discord id, digits only
	mustRegister("snowflake", validateSnowflake)

	// 'setting_name': settings category or key
	mustRegister("setting_name", validateSettingName)

	// 'image_ref': an http(s) URL or a path on this server, as returned by uploads
	mustRegister("image_ref", validateImageRef)
}

func validateSnowflake(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	return snowflakePattern.MatchString(value)
}

func validateSettingName(fl validator.FieldLevel) bool {
	return IsSettingName(fl.Field().String())
}

func validateImageRef(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if strings.HasPrefix(value, "/") {
		return !strings.HasPrefix(value, "//") && !strings.Contains(value, "..")
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
