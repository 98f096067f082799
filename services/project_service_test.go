package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/services"
)

func TestCreateProjectRejectsEmptyScript(t *testing.T) {
	svc := services.NewProjectService(services.ProjectServiceDeps{})

	_, err := svc.Create(context.Background(), "제목", "")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Create(context.Background(), "제목", "   \n\t ")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestCreateProjectRejectsEmptyTitle(t *testing.T) {
	svc := services.NewProjectService(services.ProjectServiceDeps{})

	_, err := svc.Create(context.Background(), "", "스크립트 본문")
	assert.ErrorIs(t, err, services.ErrValidation)
}
