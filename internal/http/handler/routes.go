package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"librisvc/internal/service"
)

// Deps bundles everything the route table needs. Services are injected once
// at process start; there is no ambient global state.
type Deps struct {
	Inventory  service.InventoryService
	Borrowings service.BorrowingService
	Users      service.UserService

	StorageEnabled bool
	Metrics        *prometheus.Registry
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay free of business logic; everything delegates to the services.
func RegisterRoutes(app *fiber.App, d Deps) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(d.StorageEnabled))
	app.Get("/healthz", LivenessProbe())

	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(
			promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	app.Get("/documents", ListDocuments(d.Inventory))
	app.Post("/documents", CreateDocument(d.Inventory))
	app.Get("/documents/:id", GetDocument(d.Inventory))
	app.Delete("/documents/:id", DeleteDocument(d.Inventory))
	app.Get("/documents/:id/download", DownloadDocument(d.Inventory))

	app.Get("/users", ListUsers(d.Users))
	app.Post("/users", CreateUser(d.Users))
	app.Delete("/users/:id", DeleteUser(d.Users))

	app.Get("/borrowings", ListBorrowings(d.Borrowings))
	app.Post("/borrowings", CreateBorrowing(d.Borrowings))
	app.Post("/borrowings/:id/return", ReturnBorrowing(d.Borrowings))

	app.Get("/history/export", ExportHistory(d.Borrowings))

	app.Get("/dashboard", Dashboard(d.Inventory, d.Borrowings, d.Users))
}
