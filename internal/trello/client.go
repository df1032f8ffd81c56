package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/shaiso/trellocli/internal/domain"
)

const (
	// DefaultBaseURL: базовый адрес Trello REST API.
	DefaultBaseURL = "https://api.trello.com/1/"

	// labelColor: цвет, с которым создаются метки.
	labelColor = "lime"

	// maxErrorBody ограничивает тело ответа, сохраняемое в APIError.
	maxErrorBody = 64 * 1024
)

// Client: HTTP-клиент для Trello API.
//
// Один http.Client переиспользуется всеми вызовами. Client рассчитан
// на последовательное использование.
type Client struct {
	key        string
	token      string
	baseURL    string
	httpClient *http.Client
	logger     logrus.FieldLogger
	metrics    *metrics
}

// Option настраивает Client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	logger     logrus.FieldLogger
	registerer prometheus.Registerer
}

// WithBaseURL заменяет базовый адрес API.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.baseURL = baseURL }
}

// WithHTTPClient задаёт http.Client. Таймауты берутся из него.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithLogger задаёт логгер для отладочных сообщений о запросах.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *clientOptions) { o.logger = logger }
}

// WithRegisterer регистрирует метрики клиента в reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *clientOptions) { o.registerer = reg }
}

// NewClient создаёт клиент с парой ключ/токен.
func NewClient(key, token string, opts ...Option) *Client {
	o := clientOptions{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !strings.HasSuffix(o.baseURL, "/") {
		o.baseURL += "/"
	}

	return &Client{
		key:        key,
		token:      token,
		baseURL:    o.baseURL,
		httpClient: o.httpClient,
		logger:     o.logger,
		metrics:    newMetrics(o.registerer),
	}
}

// --- Boards ---

// GetBoardList возвращает доски текущего пользователя.
// Пустой список не является ошибкой.
func (c *Client) GetBoardList(ctx context.Context) ([]domain.Board, error) {
	var boards []domain.Board
	if err := c.request(ctx, endpointBoards, http.MethodGet, "members/me/boards/", nil, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// GetBoardColumns возвращает открытые колонки доски без карточек.
func (c *Client) GetBoardColumns(ctx context.Context, boardID string) ([]domain.Column, error) {
	params := url.Values{}
	params.Set("cards", "none")
	params.Set("filter", "open")

	var columns []domain.Column
	path := "boards/" + url.PathEscape(boardID) + "/lists/"
	if err := c.request(ctx, endpointColumns, http.MethodGet, path, params, &columns); err != nil {
		return nil, err
	}
	return columns, nil
}

// --- Cards ---

// idResponse: из ответов на создание комментария и метки нужен только id.
type idResponse struct {
	ID string `json:"id"`
}

// require проверяет, что сервис вернул id созданного объекта.
func (r idResponse) require(record string) error {
	if r.ID == "" {
		return &domain.FieldError{Record: record, Field: "id", Err: domain.ErrMissingField}
	}
	return nil
}

// CreateCard создаёт карточку в колонке, добавляет комментарий и метки.
//
// Шаги выполняются строго последовательно:
//
//	POST cards/                       → CREATED
//	POST cards/{id}/actions/comments/ → COMMENT_ATTACHED
//	POST cards/{id}/labels/ (×N)      → LABELS_ATTACHED
//	                                  → DONE
//
// Если упал первый шаг, возвращается nil. Если упал любой следующий,
// возвращается частично заполненная карточка вместе с ошибкой: на сервере
// она уже существует, откат не выполняется.
//
// Пустые имена меток отбрасываются (см. domain.UniqueLabels), поэтому
// len(LabelIDs) равно числу уникальных непустых меток.
func (c *Client) CreateCard(ctx context.Context, columnID, name, comment string, labels []string) (*domain.Card, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("idList", columnID)

	var card domain.Card
	if err := c.request(ctx, endpointCreateCard, http.MethodPost, "cards/", params, &card); err != nil {
		return nil, err
	}
	card.Labels = domain.UniqueLabels(labels)

	log := c.logger.WithField("card_id", card.ID)
	cardPath := "cards/" + url.PathEscape(card.ID)

	var action idResponse
	params = url.Values{}
	params.Set("text", comment)
	if err := c.request(ctx, endpointCreateComment, http.MethodPost, cardPath+"/actions/comments/", params, &action); err != nil {
		return &card, err
	}
	if err := action.require("comment"); err != nil {
		return &card, err
	}
	card.Comment = comment
	card.CommentID = &action.ID
	card.Stage = domain.CardStageCommentAttached
	log.WithField("comment_id", action.ID).Debug("comment attached")

	for _, label := range card.Labels {
		var created idResponse
		params = url.Values{}
		params.Set("color", labelColor)
		params.Set("name", label)
		if err := c.request(ctx, endpointCreateLabel, http.MethodPost, cardPath+"/labels/", params, &created); err != nil {
			return &card, err
		}
		if err := created.require("label"); err != nil {
			return &card, err
		}
		card.LabelIDs = append(card.LabelIDs, created.ID)
		card.Stage = domain.CardStageLabelsAttached
		log.WithFields(logrus.Fields{"label": label, "label_id": created.ID}).Debug("label attached")
	}

	card.Stage = domain.CardStageDone
	return &card, nil
}

// --- HTTP helpers ---

// request выполняет запрос к API и декодирует JSON-ответ в out.
//
// В query всегда передаются key и token, params добавляются поверх.
// Имена параметров с учётными данными не пересекаются.
func (c *Client) request(ctx context.Context, endpoint, method, path string, params url.Values, out any) error {
	query := url.Values{}
	query.Set("key", c.key)
	query.Set("token", c.token)
	for k, v := range params {
		query[k] = v
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	log := c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	})

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(endpoint, method, "error", time.Since(start))
		log.WithError(err).Debug("trello request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.metrics.observe(endpoint, method, strconv.Itoa(resp.StatusCode), time.Since(start))
	log.WithFields(logrus.Fields{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("trello request")

	if err := checkError(resp, path); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func checkError(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return newAPIError(resp.StatusCode, string(body), path)
}
