package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"classhub/biz/infrastructure/config"
	"classhub/biz/infrastructure/consts"
	"classhub/biz/infrastructure/util/log"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var client *HttpClient

// HttpClient 是一个简单的 HTTP 客户端, 封装对外部协作方的调用
type HttpClient struct {
	Client *http.Client
}

// NewHttpClient 创建一个新的 HttpClient 实例, 出站请求带 trace
func NewHttpClient() *HttpClient {
	return &HttpClient{
		Client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func GetHttpClient() *HttpClient {
	if client == nil {
		client = NewHttpClient()
	}
	return client
}

// SendRequest 发送 HTTP 请求
func (c *HttpClient) SendRequest(ctx context.Context, method, url string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("关闭响应失败: %v", closeErr)
		}
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, responseBody)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(responseBody, &result); err != nil {
		return nil, fmt.Errorf("响应反序列化失败: %w", err)
	}
	return result, nil
}

// SignIn 调用统一身份认证完成登录/注册, 返回原始响应
func (c *HttpClient) SignIn(ctx context.Context, authType, authId, verifyCode, password string) (map[string]interface{}, error) {
	body := map[string]string{
		"authType":   authType,
		"authId":     authId,
		"verifyCode": verifyCode,
		"password":   password,
	}
	headers := map[string]string{
		"Content-Type": consts.ContentTypeJson,
	}
	return c.SendRequest(ctx, consts.Post, config.GetConfig().Api.IdentityURL+"/sign_in", headers, body)
}

// SendPush 调用推送服务下发一条通知, 结果只记日志不阻塞主流程
func (c *HttpClient) SendPush(ctx context.Context, userId, title, message string) error {
	body := map[string]string{
		"userId":  userId,
		"title":   title,
		"message": message,
	}
	headers := map[string]string{
		"Content-Type":  consts.ContentTypeJson,
		"Authorization": "key=" + config.GetConfig().Api.PushKey,
	}
	_, err := c.SendRequest(ctx, consts.Post, config.GetConfig().Api.PushURL, headers, body)
	return err
}
