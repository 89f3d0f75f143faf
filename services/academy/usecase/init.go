package usecase

import (
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/services/academy"
)

// AcademyUC implements the admin surface over the academy repository
type AcademyUC struct {
	repo academy.AcademyRepo
	cfg  *models.Config
}

// NewAcademyUC creates the academy usecase
func NewAcademyUC(repo academy.AcademyRepo, cfg *models.Config) *AcademyUC {
	return &AcademyUC{repo: repo, cfg: cfg}
}
