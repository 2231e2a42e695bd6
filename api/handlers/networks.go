package handlers

import (
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/sprintertech/frame-bridge/chains"
)

type NetworkResolver interface {
	Resolve(n chains.Network) (chains.ChainInfo, error)
}

type NetworkResponse struct {
	Network            string `json:"network"`
	ChainID            uint64 `json:"chainId"`
	CAIP2              string `json:"caip2"`
	WrappedNativeToken string `json:"wrappedNativeToken"`
}

type NetworksHandler struct {
	registry NetworkResolver
}

func NewNetworksHandler(registry NetworkResolver) *NetworksHandler {
	return &NetworksHandler{
		registry: registry,
	}
}

// HandleRequest returns the source networks deposits can be built for
func (h *NetworksHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	networks := make([]NetworkResponse, 0, len(chains.SourceNetworks()))
	for _, n := range chains.SourceNetworks() {
		info, err := h.registry.Resolve(n)
		if err != nil {
			JSONError(w, err, http.StatusInternalServerError)
			return
		}

		networks = append(networks, NetworkResponse{
			Network:            string(info.Network),
			ChainID:            info.ChainID,
			CAIP2:              info.CAIP2(),
			WrappedNativeToken: info.WrappedNativeToken.Hex(),
		})
	}

	writeJSON(w, networks)
}

type ExplorerLinkHandler struct {
	registry NetworkResolver
}

func NewExplorerLinkHandler(registry NetworkResolver) *ExplorerLinkHandler {
	return &ExplorerLinkHandler{
		registry: registry,
	}
}

// HandleRequest returns the block explorer link of a broadcast deposit transaction
func (h *ExplorerLinkHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	network, err := chains.ParseNetwork(vars["network"])
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}
	if !chains.IsSource(network) {
		JSONError(w, fmt.Errorf("network %s is not a source network", network), http.StatusNotFound)
		return
	}

	hash := vars["hash"]
	if len(common.FromHex(hash)) != common.HashLength {
		JSONError(w, fmt.Errorf("invalid transaction hash %s", hash), http.StatusBadRequest)
		return
	}

	info, err := h.registry.Resolve(network)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	writeJSON(w, struct {
		Network string `json:"network"`
		URL     string `json:"url"`
	}{
		Network: string(network),
		URL:     info.TransactionURL(common.HexToHash(hash)),
	})
}
