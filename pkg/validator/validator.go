// Package validator — проверка и нормализация пользовательского ввода:
// email, телефоны в формате +7, имена.
package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	passwordRegex = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+\-=[\]{};':"\\|,.<>/?]{6,}$`)
)

// stripPhone убирает из номера всё, кроме цифр и ведущего плюса.
func stripPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, phone)
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(stripPhone(phone))
}

func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	return passwordRegex.MatchString(password)
}

func ValidateNamePart(name string) bool {
	if len(name) < 2 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != ' ' && r != '\'' {
			return false
		}
	}

	return true
}

// FormatPhone приводит номер к виду +7XXXXXXXXXX: восьмёрка и голый
// десятизначный номер считаются российскими.
func FormatPhone(phone string) string {
	clean := stripPhone(phone)

	if !strings.HasPrefix(clean, "+") {
		switch {
		case strings.HasPrefix(clean, "8"):
			clean = "+7" + clean[1:]
		case strings.HasPrefix(clean, "7"):
			clean = "+" + clean
		default:
			clean = "+7" + clean
		}
	}

	return clean
}

// FormatName нормализует регистр: каждая часть имени, включая половины
// дефисных фамилий, начинается с заглавной буквы. Работает по рунам,
// кириллица не портится.
func FormatName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		subparts := strings.Split(part, "-")
		for j, subpart := range subparts {
			subparts[j] = title(subpart)
		}
		parts[i] = strings.Join(subparts, "-")
	}

	return strings.Join(parts, " ")
}

func title(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
