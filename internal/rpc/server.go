package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/newsroom/internal/newsportal"
)

func New(logger *slog.Logger, news *newsportal.NewsManager, categories *newsportal.CategoryManager,
	tags *newsportal.TagManager, featured *newsportal.FeaturedManager) *zenrpc.Server {

	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", NewNewsService(news, categories, tags))
	rpcServer.Register("featured", NewFeaturedService(featured))
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "newsroom", nil))

	return rpcServer
}
