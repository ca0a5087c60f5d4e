package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"HairJourneyCompanion/internal/model"
)

// HTTPClient Client 的 HTTP 实现，请求超时显式设置，
// 不依赖调用方记得传带超时的 context
type HTTPClient struct {
	ajaxURL string
	nonce   string
	client  *http.Client
}

func NewHTTPClient(cfg Config) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPClient{
		ajaxURL: cfg.AjaxURL,
		nonce:   cfg.Nonce,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) FetchStats(ctx context.Context) (*model.GamificationStats, error) {
	data, err := c.call(ctx, ActionGetStats, nil)
	if err != nil {
		return nil, err
	}

	var stats model.GamificationStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("decode gamification stats: %w", err)
	}
	return &stats, nil
}

func (c *HTTPClient) SubmitCheckIn(ctx context.Context, mood model.Mood) (*model.CheckInResult, error) {
	form := url.Values{}
	form.Set("mood", string(mood))

	data, err := c.call(ctx, ActionDailyCheckIn, form)
	if err != nil {
		return nil, err
	}

	var result model.CheckInResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode check-in result: %w", err)
	}
	return &result, nil
}

// envelope 全插件统一的 {success, data} 响应包装
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// call 发送一次 admin-ajax 请求并拆开 envelope，成功时返回 data 载荷
func (c *HTTPClient) call(ctx context.Context, action string, extra url.Values) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("action", action)
	form.Set("security", c.nonce)
	for key, values := range extra {
		for _, v := range values {
			form.Add(key, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ajaxURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("admin-ajax %s returned status %d", action, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope for %s: %w", action, err)
	}

	if !env.Success {
		return nil, &RejectedError{Message: failureMessage(env.Data)}
	}

	return env.Data, nil
}

// failureMessage 从失败 envelope 的 data 中提取人类可读信息。
// wp_send_json_error 的 data 可能是字符串，也可能是带 message 字段的对象
func failureMessage(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	return string(data)
}
