package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/flo-api/mocks"
	"github.com/bitmark-inc/flo-api/schema"
)

var fixedNow = time.Date(2024, 3, 10, 20, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	now = func() time.Time { return fixedNow }
	os.Exit(m.Run())
}

type testServer struct {
	*Server
	core     *mocks.MockFloCore
	mongo    *mocks.MockMongoStore
	cache    *mocks.MockDashboardCache
	insight  *mocks.MockInsightClient
	workflow *mocks.MockWorkflowClient
}

func newTestServer(ctl *gomock.Controller) *testServer {
	t := &testServer{
		core:     mocks.NewMockFloCore(ctl),
		mongo:    mocks.NewMockMongoStore(ctl),
		cache:    mocks.NewMockDashboardCache(ctl),
		insight:  mocks.NewMockInsightClient(ctl),
		workflow: mocks.NewMockWorkflowClient(ctl),
	}

	t.Server = &Server{
		store:         t.core,
		mongoStore:    t.mongo,
		cache:         t.cache,
		insightClient: t.insight,
		cadenceClient: t.workflow,
		alertWait:     time.Second,
	}

	return t
}

// withAccount stands in for the auth and account middlewares
func withAccount(a *schema.Account) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("requester", a.ID)
		c.Set("account", a)
		c.Next()
	}
}

func patient() *schema.Account {
	return &schema.Account{ID: "patient-1", Role: schema.RolePatient, Timezone: "GMT+0"}
}

func doctor() *schema.Account {
	return &schema.Account{ID: "doctor-1", Role: schema.RoleDoctor, Timezone: "GMT+8"}
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func decodeResult(w *httptest.ResponseRecorder, v interface{}) error {
	var resp struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		return err
	}
	return json.Unmarshal(resp.Result, v)
}
