package pkg

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintUniqueAsset(t *testing.T) {
	var gotReq MintAssetRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/assets", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(MintAssetResponse{AssetID: 42})
	}))
	defer server.Close()

	client := NewAssetClient(server.URL, "test-key")
	assetID, err := client.MintUniqueAsset("SkillSwap Proof of Learning", "SKILL", "ipfs://skillswap/abc")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), assetID)
	assert.Equal(t, uint64(1), gotReq.Total)
	assert.Equal(t, "SKILL", gotReq.Symbol)
}

func TestTransferAsset(t *testing.T) {
	var gotReq TransferAssetRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transfers", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewAssetClient(server.URL, "")
	err := client.TransferAsset(7, "alice", "escrow", 30)
	require.NoError(t, err)
	assert.Equal(t, TransferAssetRequest{AssetID: 7, From: "alice", To: "escrow", Amount: 30}, gotReq)
}

func TestTransferAssetFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "insufficient funds"})
	}))
	defer server.Close()

	client := NewAssetClient(server.URL, "")
	err := client.TransferAsset(7, "alice", "escrow", 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient funds")
}
