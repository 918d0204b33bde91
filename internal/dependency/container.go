// Package dependency wires the urlhaus-mcp services using go.uber.org/dig.
package dependency

import (
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/dig"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/config"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/logger"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/server"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/tools"
	"github.com/urlhaus-mcp/urlhaus-mcp/internal/urlhaus"
)

// Container holds the resolved service singletons. Everything in it is
// read-only after construction and safe for concurrent use.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	client   *urlhaus.Client
	registry *tools.Registry
	srv      *mcpserver.MCPServer
}

func (c *Container) Client() *urlhaus.Client      { return c.client }
func (c *Container) Registry() *tools.Registry    { return c.registry }
func (c *Container) Server() *mcpserver.MCPServer { return c.srv }

// New builds and wires all services from cfg.
func New(cfg *config.Config, log *logger.Entry) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() *logger.Entry { return log }); err != nil {
		return nil, err
	}
	if err := d.Provide(newClient); err != nil {
		return nil, err
	}
	if err := d.Provide(tools.NewRegistry); err != nil {
		return nil, err
	}
	if err := d.Provide(server.New); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		client *urlhaus.Client,
		registry *tools.Registry,
		srv *mcpserver.MCPServer,
	) {
		result = &Container{
			client:   client,
			registry: registry,
			srv:      srv,
		}
	})
	return result, err
}

func newClient(cfg *config.Config, log *logger.Entry) *urlhaus.Client {
	return urlhaus.NewClient(urlhaus.Options{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   time.Duration(cfg.API.Timeout) * time.Second,
	}, log)
}
