// Package handlers exposes the alignment engine over JSON endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/seqalign/seqalign-go/pkg/seqalign"
)

// ScoringPayload carries the three optional alignment weights; when
// absent the defaults (+1/-1/-2) apply.
type ScoringPayload struct {
	Match    int64 `json:"match"`
	Mismatch int64 `json:"mismatch"`
	Gap      int64 `json:"gap"`
}

// AlignRequest is the request body shared by both alignment endpoints.
type AlignRequest struct {
	Row     string          `json:"row"`
	Col     string          `json:"col"`
	Scoring *ScoringPayload `json:"scoring,omitempty"`
}

func (r AlignRequest) scoring() seqalign.Scoring {
	if r.Scoring == nil {
		return seqalign.DefaultScoring()
	}
	return seqalign.Scoring{
		Match:    seqalign.Score(r.Scoring.Match),
		Mismatch: seqalign.Score(r.Scoring.Mismatch),
		Gap:      seqalign.Score(r.Scoring.Gap),
	}
}

// GlobalAlignResponse is the response for global alignment.
type GlobalAlignResponse struct {
	AlignedRow  string  `json:"aligned_row"`
	AlignedCol  string  `json:"aligned_col"`
	Score       int64   `json:"score"`
	IdentityNum int     `json:"identity_num"`
	IdentityDen int     `json:"identity_den"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
}

// LocalAlignment is one best local alignment in a response.
type LocalAlignment struct {
	RowStart    int     `json:"row_start"`
	RowEnd      int     `json:"row_end"`
	ColStart    int     `json:"col_start"`
	ColEnd      int     `json:"col_end"`
	AlignedRow  string  `json:"aligned_row"`
	AlignedCol  string  `json:"aligned_col"`
	Score       int64   `json:"score"`
	IdentityNum int     `json:"identity_num"`
	IdentityDen int     `json:"identity_den"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
}

// LocalAlignResponse is the response for local alignment: every
// alignment tied for the best score, in deterministic order.
type LocalAlignResponse struct {
	Alignments []LocalAlignment `json:"alignments"`
}

// GlobalAlignHandler handles global (full-length) alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	result := seqalign.GlobalWith(req.Row, req.Col, req.scoring())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GlobalAlignResponse{
		AlignedRow:  seqalign.String(result.AlignedRow),
		AlignedCol:  seqalign.String(result.AlignedCol),
		Score:       int64(result.Score),
		IdentityNum: result.IdentityNum,
		IdentityDen: result.IdentityDen,
		Identity:    result.Identity(),
		CIGAR:       seqalign.CIGAR(result.AlignedRow, result.AlignedCol),
		Matches:     seqalign.MatchCount(result.AlignedRow, result.AlignedCol),
		Mismatches:  seqalign.MismatchCount(result.AlignedRow, result.AlignedCol),
		Gaps:        seqalign.GapCount(result.AlignedRow, result.AlignedCol),
	})
}

// LocalAlignHandler handles local (best substring) alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	results := seqalign.LocalWith(req.Row, req.Col, req.scoring())

	resp := LocalAlignResponse{Alignments: make([]LocalAlignment, 0, len(results))}
	for _, result := range results {
		resp.Alignments = append(resp.Alignments, LocalAlignment{
			RowStart:    result.Row.Start,
			RowEnd:      result.Row.End,
			ColStart:    result.Col.Start,
			ColEnd:      result.Col.End,
			AlignedRow:  seqalign.String(result.Row.Symbols),
			AlignedCol:  seqalign.String(result.Col.Symbols),
			Score:       int64(result.Score),
			IdentityNum: result.IdentityNum,
			IdentityDen: result.IdentityDen,
			Identity:    result.Identity(),
			CIGAR:       seqalign.CIGAR(result.Row.Symbols, result.Col.Symbols),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
