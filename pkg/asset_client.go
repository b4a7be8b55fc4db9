package pkg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MintAssetRequest asks the asset service to create a fresh unique asset
type MintAssetRequest struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	MetadataURL string `json:"metadata_url,omitempty"`
	Total       uint64 `json:"total"`
	Decimals    uint32 `json:"decimals"`
}

type MintAssetResponse struct {
	AssetID uint64 `json:"asset_id"`
}

// TransferAssetRequest asks the asset service to move an asset between accounts
type TransferAssetRequest struct {
	AssetID uint64 `json:"asset_id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Amount  uint64 `json:"amount"`
}

type assetErrorResponse struct {
	Error string `json:"error"`
}

// AssetClient talks to the external asset service that executes actual
// token and NFT movement on the ledger.
type AssetClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewAssetClient(baseURL, apiKey string) *AssetClient {
	return &AssetClient{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// MintUniqueAsset creates a one-of-one asset and returns its globally unique ID
func (c *AssetClient) MintUniqueAsset(name, symbol, metadataURL string) (uint64, error) {
	req := MintAssetRequest{
		Name:        name,
		Symbol:      symbol,
		MetadataURL: metadataURL,
		Total:       1,
		Decimals:    0,
	}
	var resp MintAssetResponse
	if err := c.post("/assets", req, &resp); err != nil {
		return 0, err
	}
	return resp.AssetID, nil
}

// TransferAsset moves amount units of an asset between two accounts
func (c *AssetClient) TransferAsset(assetID uint64, from, to string, amount uint64) error {
	req := TransferAssetRequest{
		AssetID: assetID,
		From:    from,
		To:      to,
		Amount:  amount,
	}
	return c.post("/transfers", req, nil)
}

func (c *AssetClient) post(path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		var apiErr assetErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("asset service returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("asset service returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode asset service response: %v", err)
		}
	}
	return nil
}
