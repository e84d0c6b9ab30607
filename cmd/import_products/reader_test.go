package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestReadProducts(t *testing.T) {
	csvData := "prCode;name;category;manufacturer;packing;mrp;gst;discount;casePack;expiryDate;prescriptionRequired;supplier;lowStockThreshold\n" +
		"101;Paracetamol;Analgésicos;Genfar;10x10;2500,50;12;0;1;2027-01-31;no;Droguería Sur;15\n" +
		"\n" +
		"abc;Roto;;;;1;;;;2027-01-31;;;\n" +
		"102;Amoxicilina;Antibióticos;MK;1x12;8000;;5;;2026-12-01;sí;Droguería Sur;\n"

	rows, bad, err := readProducts(strings.NewReader(csvData), ';')
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Len(t, bad, 1)
	assert.Equal(t, 4, bad[0].Line)
	assert.Contains(t, bad[0].Error(), "prCode")

	p := rows[0].Req
	assert.Equal(t, int64(101), p.PrCode)
	assert.Equal(t, "2500.5", p.MRP.String())
	assert.Equal(t, "12", p.GST.String())
	assert.False(t, p.PrescriptionRequired)
	require.NotNil(t, p.LowStockThreshold)
	assert.Equal(t, 15, *p.LowStockThreshold)

	a := rows[1].Req
	assert.Equal(t, 5, rows[1].Line)
	assert.True(t, a.PrescriptionRequired)
	assert.True(t, a.GST.IsZero())
	assert.Equal(t, 1, a.CasePack)
	assert.Nil(t, a.LowStockThreshold)
}

func TestReadProducts_Cabecera(t *testing.T) {
	_, _, err := readProducts(strings.NewReader(""), ',')
	assert.Error(t, err)

	_, _, err = readProducts(strings.NewReader("prCode,name\n1,x\n"), ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mrp")
}

func TestDecodeReader_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("prCode,name,mrp,expiryDate\n7,Jarabe niños,100,2027-05-01\n")
	require.NoError(t, err)

	r, err := decodeReader(strings.NewReader(raw), "ISO-8859-1")
	require.NoError(t, err)
	rows, bad, err := readProducts(r, ',')
	require.NoError(t, err)
	assert.Empty(t, bad)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jarabe niños", rows[0].Req.Name)

	_, err = decodeReader(strings.NewReader(raw), "ebcdic")
	assert.Error(t, err)
}
