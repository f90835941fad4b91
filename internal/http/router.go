package http

import (
	"github.com/gin-gonic/gin"

	"github.com/openshelf/librarian/internal/database/cascade"
)

// bulkDeleteEntities lists every entity type exposed on the bulk delete path.
var bulkDeleteEntities = []cascade.Entity{
	cascade.EntityBooks,
	cascade.EntityMembers,
	cascade.EntityLoans,
	cascade.EntityCopies,
	cascade.EntityBranches,
	cascade.EntityPublishers,
	cascade.EntityAuthors,
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	books := NewBooksController(cfg.Catalog, cfg.Export)
	publishers := NewPublishersController(cfg.Catalog)
	authors := NewAuthorsController(cfg.Catalog)
	branches := NewBranchesController(cfg.Circulation)
	copies := NewCopiesController(cfg.Circulation, cfg.Export)
	members := NewMembersController(cfg.Circulation, cfg.Export)
	loans := NewLoansController(cfg.Circulation, cfg.Export)
	bulkDelete := NewBulkDeleteController(cfg.Cascade, cfg.Export)
	dashboardController := NewDashboardController(cfg.Dashboard)
	seedController := NewSeedController(cfg.Seeder, cfg.Export)

	router.GET("/health", health.Status)

	api := router.Group("/api")

	api.GET("/books", books.GetAllBooks)
	api.POST("/books", books.CreateBook)
	api.PUT("/books/:isbn", books.UpdateBook)
	api.DELETE("/books/:isbn", books.DeleteBook)

	api.GET("/publishers", publishers.GetAllPublishers)
	api.POST("/publishers", publishers.CreatePublisher)

	api.GET("/authors", authors.GetAllAuthors)
	api.POST("/authors", authors.CreateAuthor)

	api.GET("/branches", branches.GetAllBranches)
	api.POST("/branches", branches.CreateBranch)

	api.GET("/copies", copies.GetAllCopies)
	api.POST("/copies", copies.CreateCopy)
	api.PUT("/copies/:id", copies.UpdateCopy)
	api.DELETE("/copies/:id", copies.DeleteCopy)

	api.GET("/members", members.GetAllMembers)
	api.POST("/members", members.CreateMember)
	api.PUT("/members/:id", members.UpdateMember)
	api.DELETE("/members/:id", members.DeleteMember)

	api.GET("/loans", loans.GetAllLoans)
	api.POST("/loans", loans.CreateLoan)
	api.PUT("/loans/:id", loans.UpdateLoan)
	api.DELETE("/loans/:id", loans.DeleteLoan)

	for _, entity := range bulkDeleteEntities {
		api.POST("/"+string(entity)+"/bulk_delete", bulkDelete.For(entity))
	}

	api.GET("/dashboard", dashboardController.GetDashboard)
	api.POST("/seed", seedController.SeedData)

	return router
}
