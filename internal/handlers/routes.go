package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"magento-commerce-actions/internal/config"
	"magento-commerce-actions/internal/middleware"
)

// Business domains, one Lambda function each
const (
	DomainCarts     = "carts"
	DomainCustomers = "customers"
	DomainOrders    = "orders"
	DomainProducts  = "products"
)

// Route binds an HTTP method and path template to an action. Path
// parameters use {name} and are passed to the action under that name.
type Route struct {
	Method string
	Path   string
	Action string
	Domain string
}

// Routes lists every action exposed over HTTP
var Routes = []Route{
	{http.MethodPost, "/carts", "postCart", DomainCarts},
	{http.MethodGet, "/carts/{id}", "getCart", DomainCarts},
	{http.MethodPost, "/carts/{id}/entries", "postCartEntry", DomainCarts},
	{http.MethodDelete, "/carts/{id}/entries", "deleteCartEntries", DomainCarts},
	{http.MethodPut, "/carts/{id}/entries/{cartEntryId}", "putCartEntry", DomainCarts},
	{http.MethodDelete, "/carts/{id}/entries/{cartEntryId}", "deleteCartEntry", DomainCarts},
	{http.MethodPost, "/carts/{id}/coupons", "postCoupon", DomainCarts},
	{http.MethodDelete, "/carts/{id}/coupons/{couponId}", "deleteCoupon", DomainCarts},
	{http.MethodPost, "/carts/{id}/addresses/shipping", "postShippingAddress", DomainCarts},
	{http.MethodPost, "/carts/{id}/addresses/billing", "postBillingAddress", DomainCarts},
	{http.MethodGet, "/carts/{id}/shipping-methods", "getShippingMethods", DomainCarts},
	{http.MethodGet, "/carts/{id}/payment-methods", "getPaymentMethods", DomainCarts},
	{http.MethodPost, "/carts/{id}/payments", "postPayment", DomainCarts},
	{http.MethodPost, "/customers/login", "postCustomerLogin", DomainCustomers},
	{http.MethodPost, "/customers/auth", "postCustomerAuth", DomainCustomers},
	{http.MethodGet, "/customers/{id}", "getCustomerById", DomainCustomers},
	{http.MethodPost, "/orders", "postOrder", DomainOrders},
	{http.MethodGet, "/products", "searchProducts", DomainProducts},
	{http.MethodGet, "/products/{id}", "getProductById", DomainProducts},
}

// RoutesFor returns the routes of one domain
func RoutesFor(domain string) []Route {
	var out []Route
	for _, r := range Routes {
		if r.Domain == domain {
			out = append(out, r)
		}
	}
	return out
}

// Match reports whether path fits the route template and returns the bound
// path parameters.
func (r Route) Match(method, path string) (map[string]string, bool) {
	if r.Method != method {
		return nil, false
	}
	want := splitPath(r.Path)
	got := splitPath(path)
	if len(want) != len(got) {
		return nil, false
	}

	params := make(map[string]string)
	for i, segment := range want {
		if name, ok := paramName(segment); ok {
			params[name] = got[i]
			continue
		}
		if segment != got[i] {
			return nil, false
		}
	}
	return params, true
}

// ginPath converts the route template to gin syntax
func (r Route) ginPath() string {
	segments := splitPath(r.Path)
	for i, segment := range segments {
		if name, ok := paramName(segment); ok {
			segments[i] = ":" + name
		}
	}
	return "/" + strings.Join(segments, "/")
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

func paramName(segment string) (string, bool) {
	if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	Invoker  Invoker
	Gatherer prometheus.Gatherer
	Logger   logrus.FieldLogger
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	actionHandler := NewActionHandler(cfg.Invoker)

	// Swagger documentation
	RegisterDocs()
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "magento-commerce-actions",
			"mode":      config.GetDeploymentMode(),
			"timestamp": time.Now().UTC(),
		})
	})

	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	for _, route := range Routes {
		router.Handle(route.Method, route.ginPath(), actionHandler.Handle(route.Action))
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *config.Config, logger logrus.FieldLogger) {
	router.Use(gin.Recovery())

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Request size limit (1MB)
	router.Use(middleware.RequestSizeLimit(1 << 20))
	router.Use(middleware.ContentTypeValidation("application/json"))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimiter(logger, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.PerformanceMonitor(logger, time.Second))
	router.Use(middleware.ErrorHandler(logger))
}
