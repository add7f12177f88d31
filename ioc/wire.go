//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mockinterview/internal/avatar"
	"github.com/ecodeclub/mockinterview/internal/feedback"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/media"
	"github.com/ecodeclub/mockinterview/internal/pkg/webhook"
	"github.com/ecodeclub/mockinterview/internal/session"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitWebhookClient, InitLLM)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		media.InitModule,
		wire.FieldsOf(new(*media.Module), "Uploader", "Hdl"),
		wire.Bind(new(interview.FileUploader), new(*media.URLUploader)),
		wire.Bind(new(interview.WebhookPoster), new(*webhook.Client)),
		wire.Bind(new(feedback.WebhookPoster), new(*webhook.Client)),
		interview.InitModule,
		wire.FieldsOf(new(*interview.Module), "Svc", "Hdl"),
		avatar.InitModule,
		wire.FieldsOf(new(*avatar.Module), "Svc", "Hdl"),
		feedback.InitModule,
		wire.FieldsOf(new(*feedback.Module), "Hdl"),
		session.InitModule,
		wire.FieldsOf(new(*session.Module), "Hdl", "SweepJob"),
		initGinxServer,
		initCronJobs,
	)
	return new(App), nil
}
