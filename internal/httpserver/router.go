package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type Deps struct {
	DB          *gorm.DB
	ProductHTTP *ProductHTTP
	SearchHTTP  *SearchHTTP
	CartHTTP    *CartHTTP
	ShopHTTP    *ShopHTTP
	TrackHTTP   *TrackHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.GET("/products", d.ProductHTTP.GetProducts)
	v1.GET("/products/:id", d.ProductHTTP.GetProduct)
	v1.GET("/search", d.SearchHTTP.Search)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHTTP.GetCart)
	cart.POST("/add", d.CartHTTP.AddToCart)
	cart.DELETE("/remove", d.CartHTTP.RemoveFromCart)
	cart.PATCH("/:id", d.CartHTTP.PatchCartItem)

	v1.GET("/shop", d.ShopHTTP.Shop)
	v1.GET("/track", d.TrackHTTP.GetOrders)
	v1.GET("/track/:id", d.TrackHTTP.GetOrder)
}
