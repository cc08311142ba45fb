package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/canteen-api/docs"
	v1 "github.com/vietanh2810/canteen-api/internal/api/handler/v1"
	"github.com/vietanh2810/canteen-api/internal/api/middleware"
	"github.com/vietanh2810/canteen-api/internal/config"
	"github.com/vietanh2810/canteen-api/internal/domain"
	"github.com/vietanh2810/canteen-api/internal/repository"
	"github.com/vietanh2810/canteen-api/internal/repository/dao"
	"github.com/vietanh2810/canteen-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth     *v1.AuthHandler
	user     *v1.UserHandler
	stand    *v1.StandHandler
	menu     *v1.MenuHandler
	discount *v1.DiscountHandler
	order    *v1.OrderHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB, loc *time.Location) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	users := repository.NewUserRepository(dao.NewUserDAO(db))
	stands := repository.NewStandRepository(dao.NewStandDAO(db))
	menus := repository.NewMenuRepository(dao.NewMenuDAO(db))
	orders := repository.NewOrderRepository(dao.NewOrderDAO(db))

	s.MountHandlers(handlers{
		auth:     s.initAuthHandler(users),
		user:     s.initUserHandler(users),
		stand:    s.initStandHandler(stands, orders, loc),
		menu:     s.initMenuHandler(menus, stands),
		discount: s.initDiscountHandler(db, stands, menus),
		order:    s.initOrderHandler(orders, loc),
	})

	return s
}

func (s *Server) initAuthHandler(users *repository.UserRepository) *v1.AuthHandler {
	svc := service.NewAuthService(users)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(users *repository.UserRepository) *v1.UserHandler {
	svc := service.NewUserService(users)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initStandHandler(
	stands *repository.StandRepository, orders *repository.OrderRepository, loc *time.Location,
) *v1.StandHandler {
	svc := service.NewStandService(stands)
	stats := service.NewStatsService(stands, orders, loc)
	handler := v1.NewStandHandler(svc, stats)

	return handler
}

func (s *Server) initMenuHandler(menus *repository.MenuRepository, stands *repository.StandRepository) *v1.MenuHandler {
	svc := service.NewMenuService(menus, stands)
	handler := v1.NewMenuHandler(svc)

	return handler
}

func (s *Server) initDiscountHandler(
	db *gorm.DB, stands *repository.StandRepository, menus *repository.MenuRepository,
) *v1.DiscountHandler {
	repo := repository.NewDiscountRepository(dao.NewDiscountDAO(db))
	svc := service.NewDiscountService(repo, stands, menus)
	handler := v1.NewDiscountHandler(svc)

	return handler
}

func (s *Server) initOrderHandler(orders *repository.OrderRepository, loc *time.Location) *v1.OrderHandler {
	svc := service.NewOrderService(orders, loc, service.ReceiptBranding{
		Title:    s.Config.Canteen.ReceiptTitle,
		Subtitle: s.Config.Canteen.ReceiptSubtitle,
		Footer:   s.Config.Canteen.ReceiptFooter,
	})
	handler := v1.NewOrderHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	var (
		authenticated = middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()
		student       = middleware.RequireRoles(domain.RoleStudent)
		adminStand    = middleware.RequireRoles(domain.RoleAdminStand)
		superadmin    = middleware.RequireRoles(domain.RoleSuperadmin)
		catalogAdmin  = middleware.RequireRoles(domain.RoleAdminStand, domain.RoleSuperadmin)
		orderParty    = middleware.RequireRoles(domain.RoleStudent, domain.RoleAdminStand)
	)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", h.auth.HandleSignup)
		public.POST("/auth/signin", h.auth.HandleSignin)

		public.GET("/stands", h.stand.HandleGetStands)
		public.GET("/stands/:standID", h.stand.HandleGetStand)
		public.GET("/stands/:standID/menus", h.menu.HandleGetStandMenus)
		public.GET("/menus/:menuID", h.menu.HandleGetMenu)
	}

	private := s.Router.Group(basePath, authenticated)
	{
		private.GET("/users/me", h.user.HandleGetMe)

		private.POST("/students", student, h.user.HandleCreateStudent)
		private.GET("/students", superadmin, h.user.HandleListStudents)
		private.GET("/students/me", student, h.user.HandleGetOwnStudent)
		private.PATCH("/students/me", student, h.user.HandleUpdateOwnStudent)

		private.POST("/stands", adminStand, h.stand.HandleCreateStand)
		private.GET("/stands/me", adminStand, h.stand.HandleGetOwnStand)
		private.GET("/stands/stats", adminStand, h.stand.HandleGetStandStats)
		private.PATCH("/stands/me", adminStand, h.stand.HandleUpdateOwnStand)
		private.PATCH("/stands/:standID", superadmin, h.stand.HandleUpdateStand)
		private.DELETE("/stands/:standID", superadmin, h.stand.HandleDeleteStand)

		private.POST("/menus", catalogAdmin, h.menu.HandleCreateMenu)
		private.GET("/menus/me", adminStand, h.menu.HandleGetOwnMenus)
		private.PATCH("/menus/:menuID", catalogAdmin, h.menu.HandleUpdateMenu)
		private.DELETE("/menus/:menuID", catalogAdmin, h.menu.HandleDeleteMenu)

		private.POST("/discounts", catalogAdmin, h.discount.HandleCreateDiscount)
		private.GET("/discounts", superadmin, h.discount.HandleGetDiscounts)
		private.GET("/discounts/me", adminStand, h.discount.HandleGetOwnDiscounts)
		private.GET("/discounts/:discountID", catalogAdmin, h.discount.HandleGetDiscount)
		private.PATCH("/discounts/:discountID", catalogAdmin, h.discount.HandleUpdateDiscount)
		private.DELETE("/discounts/:discountID", catalogAdmin, h.discount.HandleDeleteDiscount)

		private.POST("/orders", student, h.order.HandleCreateOrder)
		private.GET("/orders", orderParty, h.order.HandleGetOrders)
		private.GET("/orders/:orderID", orderParty, h.order.HandleGetOrder)
		private.PATCH("/orders/:orderID", adminStand, h.order.HandleUpdateOrderStatus)
		private.DELETE("/orders/:orderID", superadmin, h.order.HandleDeleteOrder)
		private.GET("/orders/:orderID/receipt", student, h.order.HandleGetReceipt)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
