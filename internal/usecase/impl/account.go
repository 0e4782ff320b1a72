// Package impl contains the implementation of the application's business logic.
package impl

import (
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"
)

// hashPassword runs outside transactions so bcrypt never holds a connection.
func hashPassword(hasher service.PasswordHasher, password string) (string, error) {
	hash, err := hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

// newLinkedUser builds an unsaved account pointing at exactly one profile.
func newLinkedUser(input *usecase.CreateUserInput, passwordHash string, link entity.ProfileLink) (*entity.User, error) {
	if !link.IsValid() {
		return nil, domainerrors.ErrInvalidProfileLink
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}
	user.ApplyLink(link)

	return user, nil
}

// translateNotFound maps a repository sentinel to its client-facing error.
func translateNotFound(err, notFound error, appErr *domainerrors.BaseError) error {
	if errors.Is(err, notFound) {
		return appErr.WrapMessage(err.Error())
	}

	return err
}
