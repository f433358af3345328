package services

import (
	"echosphere/errors"
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateCommand maps struct-tag failures onto the service sentinel errors.
func validateCommand(cmd any) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return err
	}
	for _, fe := range fieldErrors {
		switch fe.Field() {
		case "SenderID":
			return errors.ErrNotAuthenticated
		case "ChatID":
			return errors.ErrChatNotFound
		case "Type":
			return fmt.Errorf("%w: %q", errors.ErrInvalidMessageType, fe.Value())
		case "Data":
			return errors.ErrEmptyAttachment
		}
	}
	return err
}
