package validation

import (
	"regexp"
	"strings"

	"study-assistant/internal/domain"
	"study-assistant/internal/util"
)

const (
	maxUserIDLength   = 64
	maxQuestionLength = 2000
)

var userIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validator checks request parameters before they reach the services.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateID checks a path identifier is a ULID.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.NewMissingFieldError(field))
	} else if !util.IsULID(id) {
		errs = append(errs, domain.NewInvalidFormatError(field, id))
	}
	return errs
}

func (v *Validator) ValidateUserID(field, userID string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	switch {
	case strings.TrimSpace(userID) == "":
		errs = append(errs, domain.NewMissingFieldError(field))
	case len(userID) > maxUserIDLength || !userIDPattern.MatchString(userID):
		errs = append(errs, domain.NewInvalidFormatError(field, userID))
	}
	return errs
}

func (v *Validator) ValidateGenerateQuizRequest(numQuestions int) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if numQuestions < domain.MinQuizQuestions || numQuestions > domain.MaxQuizQuestions {
		errs = append(errs, domain.NewOutOfRangeError("numQuestions", numQuestions, domain.MinQuizQuestions, domain.MaxQuizQuestions))
	}
	return errs
}

// ValidateSubmitQuizRequest checks answer indices; the answer count is
// checked against the stored questions by the quiz service.
func (v *Validator) ValidateSubmitQuizRequest(userID string, answers []int) domain.ValidationErrors {
	errs := v.ValidateUserID("userId", userID)
	if answers == nil {
		errs = append(errs, domain.NewMissingFieldError("answers"))
	}
	for _, a := range answers {
		if a < 0 || a >= domain.QuizOptionCount {
			errs = append(errs, domain.NewOutOfRangeError("answers", a, 0, domain.QuizOptionCount-1))
			break
		}
	}
	return errs
}

func (v *Validator) ValidateChatRequest(question string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(question) == "" {
		errs = append(errs, domain.NewMissingFieldError("question"))
	} else if len(question) > maxQuestionLength {
		errs = append(errs, domain.NewOutOfRangeError("question", len(question), 1, maxQuestionLength))
	}
	return errs
}

func (v *Validator) ValidateDurationRequest(userID string, minutes int) domain.ValidationErrors {
	errs := v.ValidateUserID("userId", userID)
	if minutes < 0 {
		errs = append(errs, domain.NewInvalidFormatError("durationMinutes", minutes))
	}
	return errs
}
