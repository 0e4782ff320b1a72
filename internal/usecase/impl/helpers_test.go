package impl

import (
	"io"
	"log/slog"

	"eventhub/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAddressInput() usecase.AddressInput {
	return usecase.AddressInput{
		State:      "SP",
		City:       "São Paulo",
		District:   "Pinheiros",
		Street:     "Rua dos Pinheiros",
		Complement: "Sala 4",
		Number:     "120",
		ZipCode:    "05422-001",
	}
}

func newUserInput(email string) *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Name:     "Ana Souza",
		Email:    email,
		Password: "s3cret-pass",
	}
}
