package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DhaatuTheGamer/seamless-qr-dining/catalog"
	"github.com/DhaatuTheGamer/seamless-qr-dining/controllers"
	"github.com/DhaatuTheGamer/seamless-qr-dining/kds"
	"github.com/DhaatuTheGamer/seamless-qr-dining/middlewares"
	"github.com/DhaatuTheGamer/seamless-qr-dining/store"
	"github.com/DhaatuTheGamer/seamless-qr-dining/toast"
	"github.com/DhaatuTheGamer/seamless-qr-dining/utils"
)

// Deps carries the constructed application objects into the route tree; the
// router owns none of them.
type Deps struct {
	DB            *gorm.DB
	Store         *store.Store
	Catalog       *catalog.Catalog
	Hub           *kds.Hub
	Toasts        *toast.Queue
	OTPAcceptCode string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())

	authCtrl := controllers.NewAuthController(deps.DB, deps.OTPAcceptCode)
	menuCtrl := controllers.NewMenuController(deps.Catalog)
	cartCtrl := controllers.NewCartController(deps.Store, deps.Catalog)
	orderCtrl := controllers.NewOrderController(deps.Store, deps.Hub)
	serviceCtrl := controllers.NewServiceRequestController(deps.Store, deps.Hub)
	notifCtrl := controllers.NewNotificationController(deps.Toasts)
	kdsCtrl := controllers.NewKDSController(deps.Hub)

	api := r.Group("/api")

	// Public: login flows and the menu
	auth := api.Group("/auth")
	{
		auth.POST("/table/:table_id/otp", authCtrl.RequestOTP)
		auth.POST("/table/:table_id/verify", authCtrl.VerifyOTP)
		auth.POST("/table/:table_id/guest", authCtrl.GuestLogin)
		auth.POST("/staff/register", authCtrl.RegisterStaff)
		auth.POST("/staff/login", authCtrl.LoginStaff)
	}

	menu := api.Group("/menu")
	{
		menu.GET("", menuCtrl.GetMenu)
		menu.GET("/categories", menuCtrl.GetCategories)
		menu.GET("/:item_id", menuCtrl.GetMenuItem)
	}

	api.GET("/notifications", notifCtrl.GetNotifications)
	api.DELETE("/notifications/:notification_id", notifCtrl.DismissNotification)

	// Customer session: cart, checkout, table history, service calls
	customer := api.Group("")
	customer.Use(middlewares.AuthMiddleware())
	{
		cart := customer.Group("/cart")
		cart.Use(middlewares.RequireRoles(utils.RoleCustomer))
		{
			cart.GET("", cartCtrl.GetCart)
			cart.POST("/items", cartCtrl.AddToCart)
			cart.PATCH("/items/:cart_id", cartCtrl.UpdateCartQuantity)
			cart.DELETE("/items/:cart_id", cartCtrl.RemoveFromCart)
			cart.DELETE("", cartCtrl.ClearCart)
		}

		customer.POST("/orders", middlewares.RequireRoles(utils.RoleCustomer), orderCtrl.PlaceOrder)
		customer.GET("/orders/history", middlewares.RequireRoles(utils.RoleCustomer), orderCtrl.GetTableOrders)
		customer.GET("/orders/:order_id", orderCtrl.GetOrderByID)

		customer.POST("/service-requests", middlewares.RequireRoles(utils.RoleCustomer), serviceCtrl.RequestService)
		customer.GET("/service-requests", serviceCtrl.GetServiceRequests)

		// Staff: the kitchen side of the store
		staff := customer.Group("")
		staff.Use(middlewares.RequireRoles(utils.RoleStaff, utils.RoleAdmin))
		{
			staff.GET("/orders", orderCtrl.GetAllOrders)
			staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
			staff.PATCH("/orders/:order_id/payment", orderCtrl.ToggleOrderPayment)
			staff.DELETE("/service-requests/:request_id", serviceCtrl.ResolveServiceRequest)
			staff.GET("/kds/summary", orderCtrl.GetKitchenSummary)
		}
	}

	// Websocket upgrade carries the token as a query parameter
	r.GET("/ws/kds", middlewares.WebSocketAuthMiddleware(), kdsCtrl.Handle)

	return r
}
