package quickbooks

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"qb-sync/core/customer"
)

// QuickBooks status codes that are not failures.
const (
	statusOK            = 0
	statusNoMatch       = 1    // query found no objects
	statusAlreadyExists = 3100 // add hit an existing record
)

// buildCustomerQuery renders the QBXML request listing all customers with
// the fields the reconciliation needs.
func buildCustomerQuery(version string) string {
	return qbxmlHeader(version) + `<QBXML>
  <QBXMLMsgsRq onError="stopOnError">
    <CustomerQueryRq>
      <IncludeRetElement>Name</IncludeRetElement>
      <IncludeRetElement>FullName</IncludeRetElement>
      <IncludeRetElement>Fax</IncludeRetElement>
    </CustomerQueryRq>
  </QBXMLMsgsRq>
</QBXML>`
}

// buildCustomerAddBatch renders a single QBXML document adding every record,
// with onError="continueOnError" so one duplicate does not abort the batch.
func buildCustomerAddBatch(version string, records []customer.Record) string {
	var b strings.Builder
	b.WriteString(qbxmlHeader(version))
	b.WriteString("<QBXML>\n  <QBXMLMsgsRq onError=\"continueOnError\">\n")
	for _, rec := range records {
		b.WriteString("    <CustomerAddRq>\n      <CustomerAdd>\n")
		fmt.Fprintf(&b, "        <Name>%s</Name>\n", escapeXML(rec.Name))
		fmt.Fprintf(&b, "        <Fax>%s</Fax>\n", escapeXML(rec.ID))
		b.WriteString("      </CustomerAdd>\n    </CustomerAddRq>\n")
	}
	b.WriteString("  </QBXMLMsgsRq>\n</QBXML>")
	return b.String()
}

func qbxmlHeader(version string) string {
	return "<?xml version=\"1.0\"?>\n<?qbxml version=\"" + version + "\"?>\n"
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// qbxmlResponse mirrors the QBXML response envelope for the requests this
// gateway sends.
type qbxmlResponse struct {
	XMLName xml.Name `xml:"QBXML"`
	MsgsRs  struct {
		CustomerQueryRs []statusResponse `xml:"CustomerQueryRs"`
		CustomerAddRs   []customerAddRs  `xml:"CustomerAddRs"`
	} `xml:"QBXMLMsgsRs"`
}

type statusResponse struct {
	StatusCode    string        `xml:"statusCode,attr"`
	StatusMessage string        `xml:"statusMessage,attr"`
	CustomerRet   []customerRet `xml:"CustomerRet"`
}

type customerAddRs struct {
	StatusCode    string        `xml:"statusCode,attr"`
	StatusMessage string        `xml:"statusMessage,attr"`
	CustomerRet   []customerRet `xml:"CustomerRet"`
}

type customerRet struct {
	Name     string `xml:"Name"`
	FullName string `xml:"FullName"`
	Fax      string `xml:"Fax"`
}

// displayName prefers Name and falls back to FullName, which QuickBooks
// populates for nested customer jobs.
func (r customerRet) displayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.FullName
}

func parseResponse(raw string) (*qbxmlResponse, error) {
	var resp qbxmlResponse
	if err := xml.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("malformed QBXML response: %w", err)
	}
	return &resp, nil
}

// statusError converts a response status into an error, treating the benign
// codes as success.
func statusError(code, message string, benign ...int) error {
	n, err := strconv.Atoi(code)
	if err != nil {
		return fmt.Errorf("QBXML response missing status code (%q)", code)
	}
	if n == statusOK {
		return nil
	}
	for _, ok := range benign {
		if n == ok {
			return nil
		}
	}
	return fmt.Errorf("QuickBooks error %d: %s", n, message)
}
