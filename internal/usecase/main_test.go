package usecase_test

import (
	"os"
	"testing"

	"go-careerhub-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
