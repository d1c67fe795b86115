package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"classhub/biz/adaptor"
	"classhub/biz/application/dto/basic"
	"classhub/biz/application/dto/classhub/core"
	"classhub/biz/application/dto/classhub/sts"
	"classhub/biz/domain/scheduling"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/repository/class"
	"classhub/biz/infrastructure/repository/user"
	"classhub/biz/infrastructure/util"
	"classhub/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
)

type IUserService interface {
	SignIn(ctx context.Context, req *core.SignInReq) (*core.SignInResp, error)
	GetUserInfo(ctx context.Context, req *core.GetUserInfoReq) (*core.GetUserInfoResp, error)
	UpdateUserInfo(ctx context.Context, req *core.UpdateUserInfoReq) (*basic.Response, error)
	UpdateAvatar(ctx context.Context, req *core.UpdateAvatarReq) (*basic.Response, error)
	ListUsers(ctx context.Context, req *core.ListUsersReq) (*core.ListUsersResp, error)
}

type UserService struct {
	UserMapper  *user.MongoMapper
	ClassMapper *class.MongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignIn 登录用户, 首次登录自动建档
func (s *UserService) SignIn(ctx context.Context, req *core.SignInReq) (*core.SignInResp, error) {
	httpClient := util.GetHttpClient()
	signInResponse, err := httpClient.SignIn(ctx, req.AuthType, req.AuthId, req.VerifyCode, req.Password)
	if err != nil || signInResponse["code"].(float64) != 0 {
		return nil, consts.ErrSignIn
	}
	resp := new(sts.SignInResp)
	if dataMap, ok := signInResponse["data"].(map[string]any); ok {
		if err := mapstructure.Decode(dataMap, resp); err != nil {
			return nil, consts.ErrSignIn
		}
	} else {
		return nil, consts.ErrSignIn
	}

	userId := resp.UserId

	u, err := s.UserMapper.FindOne(ctx, userId)
	if errors.Is(err, consts.ErrNotFound) || u == nil {
		// 注册流程: 默认学生, 姓名先用邮箱前缀占位
		now := time.Now()
		name := "未设置姓名"
		if i := strings.Index(resp.Email, "@"); i > 0 {
			name = resp.Email[:i]
		}
		u = &user.User{
			ID:         userId,
			Name:       name,
			Email:      resp.Email,
			Role:       consts.RoleStudent,
			CreateTime: now,
			UpdateTime: now,
			LastActive: now,
		}
		if err = s.UserMapper.Insert(ctx, u); err != nil {
			log.CtxError(ctx, "创建用户档案失败: %v", err)
			return nil, consts.ErrSignIn
		}
	} else if err != nil {
		return nil, consts.ErrSignIn
	} else {
		s.UserMapper.Touch(ctx, userId)
	}

	accessToken, accessExpire, err := adaptor.GenerateJwtToken(userId, u.Role)
	if err != nil {
		return nil, consts.ErrSignIn
	}

	return &core.SignInResp{
		Id:           userId,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
		Name:         u.Name,
		Role:         string(u.Role),
	}, nil
}

// GetUserInfo 获取当前用户信息
func (s *UserService) GetUserInfo(ctx context.Context, req *core.GetUserInfoReq) (*core.GetUserInfoResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return &core.GetUserInfoResp{
			Code:    -1,
			Msg:     "查询用户信息失败，请先登录或重试",
			Payload: nil,
		}, nil
	}

	return &core.GetUserInfoResp{
		Code:    0,
		Msg:     "查询成功",
		Payload: toUserProfileInfo(u),
	}, nil
}

// UpdateUserInfo 更新当前用户资料, role 不允许自助修改
func (s *UserService) UpdateUserInfo(ctx context.Context, req *core.UpdateUserInfoReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Location != nil {
		u.Location = *req.Location
	}
	if req.Subject != nil {
		u.Subject = *req.Subject
	}
	if req.Grade != nil {
		u.Grade = *req.Grade
	}
	if req.Department != nil {
		u.Department = *req.Department
	}

	if err = s.UserMapper.Update(ctx, u); err != nil {
		return nil, consts.ErrUpdate
	}
	return util.Succeed("更新成功")
}

// UpdateAvatar 上传完成后回填头像地址, 旧头像按 key 异步清理
func (s *UserService) UpdateAvatar(ctx context.Context, req *core.UpdateAvatarReq) (*basic.Response, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		return nil, consts.ErrNotFound
	}

	oldKey := u.AvatarKey
	u.AvatarURL = req.AvatarUrl
	u.AvatarKey = req.AvatarKey
	if err = s.UserMapper.Update(ctx, u); err != nil {
		return nil, consts.ErrUploadAvatar
	}

	if oldKey != "" && oldKey != req.AvatarKey {
		if err = util.DeleteObject(oldKey); err != nil {
			log.CtxError(ctx, "清理旧头像失败 key=%s: %v", oldKey, err)
		}
	}
	return util.Succeed("更新成功")
}

// ListUsers 按角色列用户: 学生花名册对教师和管理员开放,
// 教师与管理员列表仅管理员可见, 每行附带课程汇总
func (s *UserService) ListUsers(ctx context.Context, req *core.ListUsersReq) (*core.ListUsersResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	role, err := adaptor.ExtractRole(meta)
	if err != nil {
		return nil, consts.ErrForbidden
	}

	target := consts.Role(req.Role)
	if !target.Valid() {
		return nil, consts.ErrInvalidParams
	}
	switch target {
	case consts.RoleStudent:
		if role != consts.RoleTeacher && role != consts.RoleAdmin {
			return nil, consts.ErrForbidden
		}
	default:
		if role != consts.RoleAdmin {
			return nil, consts.ErrForbidden
		}
	}

	users, err := s.UserMapper.FindByRole(ctx, target)
	if err != nil {
		log.CtxError(ctx, "查询用户列表失败: %v", err)
		return nil, consts.ErrNotFound
	}
	classes, err := s.ClassMapper.FindAll(ctx)
	if err != nil {
		log.CtxError(ctx, "查询用户列表失败: %v", err)
		return nil, consts.ErrGetClassList
	}

	items := make([]*core.UserListItemInfo, 0, len(users))
	for _, u := range users {
		items = append(items, &core.UserListItemInfo{
			User:  toUserProfileInfo(u),
			Stats: rollupStats(classes, u),
		})
	}
	return &core.ListUsersResp{
		Code:  0,
		Msg:   "查询成功",
		Users: items,
		Total: int64(len(items)),
	}, nil
}

func rollupStats(classes []*class.Class, u *user.User) *core.UserStatsInfo {
	switch u.Role {
	case consts.RoleTeacher:
		r := scheduling.RollupForTeacher(classes, u.ID)
		return &core.UserStatsInfo{
			Classes:   r.Classes,
			Students:  r.Students,
			Active:    r.Active,
			Completed: r.Completed,
		}
	case consts.RoleStudent:
		r := scheduling.RollupForStudent(classes, u.ID)
		return &core.UserStatsInfo{
			Enrolled:  r.Enrolled,
			Active:    r.Active,
			Completed: r.Completed,
		}
	default:
		return &core.UserStatsInfo{}
	}
}

func toUserProfileInfo(u *user.User) *core.UserProfileInfo {
	return &core.UserProfileInfo{
		Id:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Bio:        u.Bio,
		Phone:      u.Phone,
		Location:   u.Location,
		Subject:    u.Subject,
		Grade:      u.Grade,
		Department: u.Department,
		AvatarUrl:  u.AvatarURL,
		CreateTime: u.CreateTime.Unix(),
	}
}
