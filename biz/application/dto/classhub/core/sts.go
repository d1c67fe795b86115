package core

// ApplyAvatarUploadReq 申请头像直传地址
type ApplyAvatarUploadReq struct {
	ContentType   string `json:"contentType"`
	ContentLength int64  `json:"contentLength"`
	Suffix        string `json:"suffix"` // 例如 .png
}

type ApplyAvatarUploadResp struct {
	Code      int64  `json:"code"`
	Msg       string `json:"msg"`
	UploadUrl string `json:"uploadUrl"`
	Key       string `json:"key"`
	PublicUrl string `json:"publicUrl"`
}

type DeleteAssetReq struct {
	Key string `json:"key"`
}
