package spillman

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/clbanning/mxj/v2"
	"github.com/pkg/errors"
	"github.com/sccity/dispatch-etl/config"
	"github.com/sccity/dispatch-etl/logger"
)

// QueryError reports a remote query failure for one window. The query path
// never retries; the pipeline logs the error and moves to the next window.
type QueryError struct {
	Table string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("error querying remote table %q: %v", e.Table, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// Querier issues one windowed query against a remote record table.
type Querier interface {
	Query(table, filterField string, w Window) ([]Record, error)
}

// Client talks to the Spillman Flex XML query endpoint. One Client holds one
// persistent HTTP session; calls are otherwise stateless.
type Client struct {
	Log        logger.Logger
	URL        string
	user       string
	password   string
	httpClient *http.Client
}

// NewClient builds a Client from the configured endpoint settings.
// TLS verification is disabled: the remote serves a self-signed certificate.
func NewClient(log logger.Logger, cfg config.SpillmanSettings) *Client {
	return &Client{
		Log:      log,
		URL:      cfg.URL,
		user:     cfg.User,
		password: cfg.Password,
		httpClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}
}

// buildQuery renders the fixed-shape query envelope for one table and one
// pair of range bounds on filterField.
func buildQuery(table, filterField string, w Window) string {
	return fmt.Sprintf(`<PublicSafetyEnvelope version="1.0">
    <PublicSafety id="">
        <Query>
            <%[1]v>
                <%[2]v search_type="greater_than">%[3]v</%[2]v>
                <%[2]v search_type="less_than">%[4]v</%[2]v>
            </%[1]v>
        </Query>
    </PublicSafety>
</PublicSafetyEnvelope>`, table, filterField, w.Start, w.End)
}

// Query posts one windowed query and returns the raw result records found at
// PublicSafetyEnvelope -> PublicSafety -> Response -> <table>.
// Zero rows (absent or empty result collection) is (nil, nil), not an error.
func (c *Client) Query(table, filterField string, w Window) ([]Record, error) {
	req, err := http.NewRequest(http.MethodPost, c.URL, strings.NewReader(buildQuery(table, filterField, w)))
	if err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}
	req.Header.Set("Content-Type", "application/xml")
	req.SetBasicAuth(c.user, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, &QueryError{Table: table, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &QueryError{Table: table, Err: errors.Errorf("remote returned status %v", resp.Status)}
	}
	return parseResponse(table, body)
}

// parseResponse walks the response tree and extracts the result collection.
func parseResponse(table string, body []byte) ([]Record, error) {
	m, err := mxj.NewMapXml(body)
	if err != nil {
		return nil, &QueryError{Table: table, Err: errors.Wrap(err, "parsing response XML")}
	}
	vals, err := m.ValuesForPath("PublicSafetyEnvelope.PublicSafety.Response." + table)
	if err != nil {
		return nil, &QueryError{Table: table, Err: errors.Wrap(err, "walking response tree")}
	}
	if len(vals) == 0 { // an absent or empty result collection is "no rows", not an error.
		return nil, nil
	}
	records := make([]Record, 0, len(vals))
	for _, v := range vals {
		fields, ok := v.(map[string]interface{})
		if !ok { // an empty <table/> element decodes to nil: no rows in this element.
			continue
		}
		rec := make(Record, len(fields))
		for k, fv := range fields {
			rec[k] = fieldToString(fv)
		}
		records = append(records, rec)
	}
	return records, nil
}

// fieldToString flattens one decoded field value. Nested elements (the
// messenger message payload embeds an HTML document) are re-rendered as XML
// text so the entity transform can deal with them.
func fieldToString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]interface{}:
		b, err := mxj.Map(t).Xml()
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", t)
	}
}
