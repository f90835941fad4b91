package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/seed"
)

type SeedController struct {
	seeder *seed.Seeder
	export ExportFunc
}

func NewSeedController(seeder *seed.Seeder, export ExportFunc) *SeedController {
	return &SeedController{seeder: seeder, export: export}
}

// SeedData handles POST /api/seed.
func (controller *SeedController) SeedData(c *gin.Context) {
	result, err := controller.seeder.Seed()
	if err != nil {
		respondStorageError(c, err)
		return
	}

	refreshExports(controller.export, "books", "copies", "loans", "members")
	c.JSON(http.StatusCreated, gin.H{"message": "Seed completed", "inserted": result})
}
