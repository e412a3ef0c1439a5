// Package router 管理路由配置，将 API 路径绑定到 pkg/internal/handle 的处理器.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/studiovault/pkg/internal/handle"
	"github.com/yeisme/studiovault/pkg/middleware"
)

// RegisterAPIRoutes 注册全部 API 路由。写操作挂在 Bearer 认证之后，
// 图片查询、登录、静态数据和健康检查保持公开.
func RegisterAPIRoutes(g *gin.RouterGroup) {
	registerAuthRoutes(g)
	registerImagesRoutes(g)
	registerVideosRoutes(g)
	registerDataRoutes(g)
	registerHealthRoute(g)
}

// registerAuthRoutes 注册认证路由.
func registerAuthRoutes(g *gin.RouterGroup) {
	authRoutes := g.Group("/auth")
	{
		authRoutes.POST("/login", handle.Login)
	}
}

// registerImagesRoutes 注册图片路由。查询公开，增删改需要令牌.
func registerImagesRoutes(g *gin.RouterGroup) {
	imagesRoutes := g.Group("/images")
	{
		imagesRoutes.GET("", handle.ListImages)

		protected := imagesRoutes.Group("", middleware.AuthMiddleware())
		{
			protected.POST("", handle.UploadImages)
			protected.PUT("", handle.UpdateImageOrder)
			protected.DELETE("", handle.DeleteImage)
		}
	}
}

// registerVideosRoutes 注册视频路由。全部操作需要令牌，包括列表查询.
func registerVideosRoutes(g *gin.RouterGroup) {
	videosRoutes := g.Group("/videos", middleware.AuthMiddleware())
	{
		videosRoutes.GET("", handle.ListVideos)
		videosRoutes.POST("", handle.UploadVideo)
		videosRoutes.DELETE("", handle.DeleteVideo)
		videosRoutes.POST("/signature", handle.SignVideoUpload)
		videosRoutes.POST("/save", handle.SaveVideo)
	}
}

// registerDataRoutes 注册静态 JSON 数据路由.
func registerDataRoutes(g *gin.RouterGroup) {
	dataRoutes := g.Group("/data")
	{
		dataRoutes.GET("/:filename", handle.GetData)
	}
}

// registerHealthRoute 注册健康检查路由.
func registerHealthRoute(g *gin.RouterGroup) {
	g.GET("/health", handle.Health)
}
