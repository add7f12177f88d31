// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package media

import (
	"net/http"
	"os"
	"time"

	"github.com/ecodeclub/mockinterview/internal/media/internal/service"
	"github.com/ecodeclub/mockinterview/internal/media/internal/web"
	"github.com/ecodeclub/mockinterview/internal/pkg/imagekit"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

func InitModule() (*Module, error) {
	wire.Build(
		initImageKitUploader,
		service.NewImageKitStorage,
		service.NewURLUploader,
		initCOSConfig,
		initSTSClient,
		initCredentialService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type ImageKitCfg struct {
	Endpoint   string `yaml:"endpoint"`
	PrivateKey string `yaml:"privateKey"`
}

func initImageKitUploader() service.ImageKitUploader {
	var cfg ImageKitCfg
	err := econf.UnmarshalKey("imagekit", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.PrivateKey == "" {
		cfg.PrivateKey = os.Getenv("IMAGEKIT_PRIVATE_KEY")
	}
	return imagekit.NewClient(cfg.Endpoint, cfg.PrivateKey, &http.Client{Timeout: time.Minute})
}

type COSCfg struct {
	SecretID  string `yaml:"secretID"`
	SecretKey string `yaml:"secretKey"`
	AppID     string `yaml:"appID"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

func initCOSConfig() COSCfg {
	var cfg COSCfg
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.SecretID == "" {
		cfg.SecretID = os.Getenv("COS_SECRET_ID")
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("COS_SECRET_KEY")
	}
	if cfg.AppID == "" {
		cfg.AppID = os.Getenv("COS_APP_ID")
	}
	if cfg.Bucket == "" {
		cfg.Bucket = os.Getenv("COS_BUCKET")
	}
	return cfg
}

func initSTSClient(cfg COSCfg) service.STSClient {
	return sts.NewClient(cfg.SecretID, cfg.SecretKey, http.DefaultClient)
}

func initCredentialService(client service.STSClient, cfg COSCfg) service.CredentialService {
	return service.NewSTSCredentialService(client, service.COSConfig{
		AppID:  cfg.AppID,
		Bucket: cfg.Bucket,
		Region: cfg.Region,
	})
}
