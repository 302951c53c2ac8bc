package search

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

var testListings = []Listing{
	{Code: "005930", Name: "삼성전자", Market: "KOSPI"},
	{Code: "005935", Name: "삼성전자우", Market: "KOSPI"},
	{Code: "000660", Name: "SK하이닉스", Market: "KOSPI"},
	{Code: "035720", Name: "카카오", Market: "KOSPI"},
}

func TestListingExactBeforeSubstring(t *testing.T) {
	li := NewListingIndex(testListings, zap.NewNop())

	// "삼성전자" is a substring of "삼성전자우" too; the exact match must win.
	code, ok := li.Lookup("삼성전자")
	if !ok || code != "005930" {
		t.Errorf("Lookup(삼성전자) = (%q, %v), want 005930", code, ok)
	}
}

func TestListingSubstringMatch(t *testing.T) {
	li := NewListingIndex(testListings, zap.NewNop())

	code, ok := li.Lookup("하이닉스")
	if !ok || code != "000660" {
		t.Errorf("Lookup(하이닉스) = (%q, %v), want 000660", code, ok)
	}

	// Case-insensitive
	code, ok = li.Lookup("sk하이닉스")
	if !ok || code != "000660" {
		t.Errorf("Lookup(sk하이닉스) = (%q, %v), want 000660", code, ok)
	}
}

func TestListingIndexMatchTier(t *testing.T) {
	listings := []Listing{
		{Code: "000660", Name: "SK Hynix Inc", Market: "KOSPI"},
		{Code: "005930", Name: "Samsung Electronics", Market: "KOSPI"},
	}
	li := NewListingIndex(listings, zap.NewNop())
	if li.index == nil {
		t.Fatal("in-memory index not built")
	}

	// "Hynix Semiconductor" is neither an exact name nor a substring of
	// one; only the index match on the shared term can resolve it.
	code, ok := li.Lookup("Hynix Semiconductor")
	if !ok || code != "000660" {
		t.Errorf("Lookup(Hynix Semiconductor) = (%q, %v), want 000660", code, ok)
	}
}

func TestListingMiss(t *testing.T) {
	li := NewListingIndex(testListings, zap.NewNop())
	if code, ok := li.Lookup("없는회사"); ok {
		t.Errorf("Lookup(없는회사) unexpectedly returned %q", code)
	}
}

const searchResultPage = `<html><body>
<table>
<tr><th>종목명</th><th>현재가</th></tr>
<tr>
  <td><a href="/item/main.naver?code=035720">카카오</a></td>
  <td>45,000</td>
</tr>
<tr>
  <td><a href="/item/main.naver?code=323410">카카오뱅크</a></td>
  <td>21,000</td>
</tr>
</table>
</body></html>`

func TestMatchResultRows(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(searchResultPage))
	if err != nil {
		t.Fatal(err)
	}
	r := NewWebResolver(zap.NewNop())

	code, ok := r.matchResultRows(doc, "카카오")
	if !ok || code != "035720" {
		t.Errorf("matchResultRows(카카오) = (%q, %v), want 035720", code, ok)
	}

	code, ok = r.matchResultRows(doc, "카카오뱅크")
	if !ok || code != "323410" {
		t.Errorf("matchResultRows(카카오뱅크) = (%q, %v), want 323410", code, ok)
	}
}

func TestMatchLinkText(t *testing.T) {
	page := `<html><body>
	<a href="/item/main.naver?code=005380">현대차</a>
	<a href="/item/main.naver?code=000270">기아</a>
	</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	r := NewWebResolver(zap.NewNop())

	code, ok := r.matchLinkText(doc, "기아")
	if !ok || code != "000270" {
		t.Errorf("matchLinkText(기아) = (%q, %v), want 000270", code, ok)
	}

	if code, ok := r.matchLinkText(doc, "포스코"); ok {
		t.Errorf("matchLinkText(포스코) unexpectedly returned %q", code)
	}
}
