package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewClient(t *testing.T) {
	Convey("Given a client built by NewClient", t, func() {
		var seen string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		client := NewClient(5*time.Second, "anitable-test/1.0")
		So(client.Timeout, ShouldEqual, 5*time.Second)

		Convey("Requests carry the configured user agent", func() {
			resp, err := client.Get(server.URL)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(seen, ShouldEqual, "anitable-test/1.0")
		})

		Convey("An explicit header is left alone", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom")
			resp, err := client.Do(req)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(seen, ShouldEqual, "custom")
		})
	})
}

func TestNewClientTimeouts(t *testing.T) {
	Convey("Given a client built with a zero timeout and no user agent", t, func() {
		client := NewClient(0, "")

		Convey("The client has no overall timeout", func() {
			So(client.Timeout, ShouldEqual, time.Duration(0))
		})

		Convey("The transport does not bound response headers", func() {
			transport, ok := client.Transport.(*http.Transport)
			So(ok, ShouldBeTrue)
			So(transport.ResponseHeaderTimeout, ShouldEqual, time.Duration(0))
		})
	})
}
