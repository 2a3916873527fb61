package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStreamKeysDecodesNDJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/keys/stream" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"access_key":"AKIDEXAMPLE","secret_key":"wJalrXUtnFEMI","user_id":"u-1"}` + "\n"))
		w.Write([]byte(`{"access_key":"AKIDOTHER","secret_key":"secret2","user_id":"u-2"}` + "\n"))
	}))
	defer srv.Close()

	c := New(srv.URL)

	var got []Key
	err := c.StreamKeys(context.Background(), func(k Key) error {
		got = append(got, k)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(got))
	}
	if got[0].AccessKey != "AKIDEXAMPLE" || got[1].UserID != "u-2" {
		t.Errorf("unexpected keys: %+v", got)
	}
}

func TestStreamKeysPropagatesCallbackError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_key":"AKIDEXAMPLE","secret_key":"s","user_id":"u"}` + "\n"))
	}))
	defer srv.Close()

	c := New(srv.URL)

	boom := context.Canceled
	err := c.StreamKeys(context.Background(), func(k Key) error {
		return boom
	})
	if err != boom {
		t.Errorf("expected callback error to propagate, got %v", err)
	}
}

func TestGetKeyNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, ok, err := c.GetKey(context.Background(), "AKIDMISSING")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if ok {
		t.Error("expected miss for 404 response")
	}
}

func TestGetKeyFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/keys/AKIDEXAMPLE" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"access_key":"AKIDEXAMPLE","secret_key":"wJalrXUtnFEMI","user_id":"u-1"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	k, ok, err := c.GetKey(context.Background(), "AKIDEXAMPLE")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if k.SecretKey != "wJalrXUtnFEMI" {
		t.Errorf("unexpected secret key: %s", k.SecretKey)
	}
}
