package service

import (
	"context"
	"time"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/basic"
	"classhub/biz/application/dto/classhub/core"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/util"
	"classhub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

const presignExpire = 10 * time.Minute

type IStsService interface {
	ApplyAvatarUpload(ctx context.Context, req *core.ApplyAvatarUploadReq) (*core.ApplyAvatarUploadResp, error)
	DeleteAsset(ctx context.Context, req *core.DeleteAssetReq) (*basic.Response, error)
}

type StsService struct {
}

var StsServiceSet = wire.NewSet(
	wire.Struct(new(StsService), "*"),
	wire.Bind(new(IStsService), new(*StsService)),
)

// ApplyAvatarUpload 申请头像直传地址, 类型与体积在服务端先行把关
func (s *StsService) ApplyAvatarUpload(ctx context.Context, req *core.ApplyAvatarUploadReq) (*core.ApplyAvatarUploadResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if !lo.Contains(consts.AvatarContentTypes, req.ContentType) {
		return nil, consts.ErrInvalidAvatarType
	}
	if req.ContentLength <= 0 || req.ContentLength > consts.AvatarMaxBytes {
		return nil, consts.ErrAvatarTooLarge
	}

	key := util.NewAvatarKey(meta.GetUserId(), req.Suffix)
	uploadUrl, err := util.PresignPutURL(key, req.ContentType, presignExpire)
	if err != nil {
		log.CtxError(ctx, "申请上传地址失败: %v", err)
		return nil, consts.ErrUploadAvatar
	}

	return &core.ApplyAvatarUploadResp{
		Code:      0,
		Msg:       "申请成功",
		UploadUrl: uploadUrl,
		Key:       key,
		PublicUrl: util.PublicURL(key),
	}, nil
}

// DeleteAsset 删除对象, 只允许操作自己目录下的资源
func (s *StsService) DeleteAsset(ctx context.Context, req *core.DeleteAssetReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if !util.OwnsAsset(meta.GetUserId(), req.Key) {
		return nil, consts.ErrForbidden
	}

	if err := util.DeleteObject(req.Key); err != nil {
		log.CtxError(ctx, "删除资源失败 key=%s: %v", req.Key, err)
		return nil, consts.ErrCall
	}
	return util.Succeed("删除成功")
}
