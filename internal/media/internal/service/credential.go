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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/mockinterview/internal/media/internal/domain"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

var ErrKeyNotAllowed = errors.New("不允许上传到该路径")

type STSClient interface {
	GetCredential(opt *sts.CredentialOptions) (*sts.CredentialResult, error)
}

// CredentialService 签发浏览器直传 COS 的临时密钥，每个用户只能写自己的目录
//
//go:generate mockgen -source=./credential.go -destination=../../mocks/credential.mock.go -package=mediamocks CredentialService
type CredentialService interface {
	Issue(ctx context.Context, uid int64, key, contentType string) (domain.Credential, error)
}

type COSConfig struct {
	AppID  string `yaml:"appID"`
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
}

type stsCredentialService struct {
	client STSClient
	cfg    COSConfig
	// 临时密钥的权限
	actions []string
}

func NewSTSCredentialService(client STSClient, cfg COSConfig) CredentialService {
	return &stsCredentialService{
		client: client,
		cfg:    cfg,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
	}
}

// UserPrefix 用户可以写入的目录
func UserPrefix(uid int64) string {
	return fmt.Sprintf("interviews/%d/", uid)
}

func (s *stsCredentialService) Issue(_ context.Context, uid int64, key, contentType string) (domain.Credential, error) {
	key = strings.TrimPrefix(key, "/")
	if !strings.HasPrefix(key, UserPrefix(uid)) || strings.Contains(key, "..") {
		return domain.Credential{}, fmt.Errorf("%w: %s", ErrKeyNotAllowed, key)
	}
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		s.cfg.Region, s.cfg.AppID,
		s.cfg.Bucket, s.cfg.AppID, key)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(time.Hour.Seconds()),
		Region:          s.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action: s.actions,
					Effect: "allow",
					Resource: []string{
						resource,
					},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": contentType,
						},
					},
				},
			},
		},
	}
	res, err := s.client.GetCredential(opt)
	if err != nil {
		return domain.Credential{}, err
	}
	return domain.Credential{
		SecretID:     res.Credentials.TmpSecretID,
		SecretKey:    res.Credentials.TmpSecretKey,
		SessionToken: res.Credentials.SessionToken,
		StartTime:    int64(res.StartTime),
		ExpiredTime:  int64(res.ExpiredTime),
		Bucket:       fmt.Sprintf("%s-%s", s.cfg.Bucket, s.cfg.AppID),
		Region:       s.cfg.Region,
	}, nil
}
