package routes

import (
	"savoria/configs"
	"savoria/controllers"
	"savoria/pkg/upload"
	"savoria/repository"
	"savoria/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	store := upload.NewStore(cfg.UploadsDir)

	menuItemRepo := repository.NewMenuItemRepository(db)
	imageRepo := repository.NewImageRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	menuItemSvc := services.NewMenuItemService(menuItemRepo, imageRepo, store)
	locationSvc := services.NewLocationService(locationRepo, store)

	// Controllers
	authCtrl := controllers.NewAuthController()
	categoryCtrl := controllers.NewCategoryController(db)
	menuItemCtrl := controllers.NewMenuItemController(menuItemSvc)
	imageCtrl := controllers.NewImageController(imageRepo, menuItemSvc, store)
	locationCtrl := controllers.NewLocationController(locationSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/verify", authCtrl.Verify)
	}

	// Categories
	r.GET("/categories", categoryCtrl.List)
	r.POST("/categories", categoryCtrl.Create)
	r.PUT("/categories/:id", categoryCtrl.Update)
	r.DELETE("/categories/:id", categoryCtrl.Delete)

	// Menu items
	r.GET("/menu-items", menuItemCtrl.List)
	r.POST("/menu-items", menuItemCtrl.Create)
	r.GET("/menu-items/:id", menuItemCtrl.Get)
	r.PUT("/menu-items/:id", menuItemCtrl.Update)
	r.DELETE("/menu-items/:id", menuItemCtrl.Delete)
	r.GET("/menu-items/:id/images", imageCtrl.ListByMenuItem)
	r.POST("/menu-items/:id/images", imageCtrl.UploadForMenuItem)

	// Images
	r.GET("/images", imageCtrl.ListAll)
	r.DELETE("/images/:id", imageCtrl.Delete)

	// Locations
	r.GET("/locations", locationCtrl.List)
	r.POST("/locations", locationCtrl.Create)
	r.GET("/locations/:id", locationCtrl.Get)
	r.PUT("/locations/:id", locationCtrl.Update)
	r.DELETE("/locations/:id", locationCtrl.Delete)
}
