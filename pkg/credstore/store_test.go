/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credstore

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeGenerator = func(t *testing.T) Store

func testStoreSuite(t *testing.T, gen storeGenerator) {
	tests := []struct {
		title string
		run   func(t *testing.T, store Store)
	}{
		{"testSetAndGet", testSetAndGet},
		{"testGetNonExisting", testGetNonExisting},
		{"testHasConsistentWithGet", testHasConsistentWithGet},
		{"testOverwrite", testOverwrite},
		{"testSequentialSetsKeepBothKeys", testSequentialSetsKeepBothKeys},
		{"testEmptyStringValue", testEmptyStringValue},
		{"testSpecialCharacters", testSpecialCharacters},
		{"testDeleteAndKeys", testDeleteAndKeys},
	}
	for _, test := range tests {
		t.Run(test.title, func(t *testing.T) {
			test.run(t, gen(t))
		})
	}
}

func testSetAndGet(t *testing.T, store Store) {
	values := map[string]string{
		"alice_Org1":       `{"version":1,"mspId":"Org1MSP"}`,
		"bob_Org2_ca.org2": "plain",
		"key with spaces":  "value with = and :",
		"carol_Org3":       "été",
	}
	for k, v := range values {
		if err := store.Set(k, v); err != nil {
			t.Fatalf("Set %s failed [%s]", k, err)
		}
	}
	for k, v := range values {
		got, ok := store.Get(k)
		if !ok {
			t.Fatalf("Expected value for %s", k)
		}
		if got != v {
			t.Fatalf("Unexpected value for %s: %q, expected %q", k, got, v)
		}
	}
}

func testGetNonExisting(t *testing.T, store Store) {
	if v, ok := store.Get("non-existing"); ok || v != "" {
		t.Fatal("fetching value for non-existing key should return absent")
	}
}

func testHasConsistentWithGet(t *testing.T, store Store) {
	if err := store.Set("present", "1"); err != nil {
		t.Fatalf("Set failed [%s]", err)
	}
	for _, k := range []string{"present", "absent"} {
		_, ok := store.Get(k)
		if store.Has(k) != ok {
			t.Fatalf("Has(%s) inconsistent with Get", k)
		}
	}
}

func testOverwrite(t *testing.T, store Store) {
	if err := store.Set("key", "first"); err != nil {
		t.Fatalf("Set failed [%s]", err)
	}
	if err := store.Set("key", "second"); err != nil {
		t.Fatalf("Set failed [%s]", err)
	}
	if v, _ := store.Get("key"); v != "second" {
		t.Fatalf("Expected overwritten value, got %q", v)
	}
}

func testSequentialSetsKeepBothKeys(t *testing.T, store Store) {
	if err := store.Set("key1", "value1"); err != nil {
		t.Fatalf("Set failed [%s]", err)
	}
	if err := store.Set("key2", "value2"); err != nil {
		t.Fatalf("Set failed [%s]", err)
	}
	if v, ok := store.Get("key1"); !ok || v != "value1" {
		t.Fatal("key1 lost after second Set")
	}
	if v, ok := store.Get("key2"); !ok || v != "value2" {
		t.Fatal("key2 not stored")
	}
}

func testEmptyStringValue(t *testing.T, store Store) {
	if err := store.Set("empty-string", ""); err != nil {
		t.Fatal("setting an empty string value shouldn't fail")
	}
	v, ok := store.Get("empty-string")
	if !ok || v != "" {
		t.Fatal("empty string value should be present")
	}
}

func testSpecialCharacters(t *testing.T, store Store) {
	values := map[string]string{
		"#hash":       "comment marker",
		"!bang":       "! also a comment marker",
		"k=eq:colon":  "a=b:c",
		" lead key":   "v",
		"tab\tkey":    "tab\tvalue",
		"lead":        "  leading spaces",
		"trail":       "trailing spaces  ",
		"back\\slash": `C:\keys\alice\key.pem`,
		"multi":       "line one\nline two\r\n",
		"feed":        "\f",
		"unicode":     `\u0041 stays literal`,
	}
	for k, v := range values {
		require.NoError(t, store.Set(k, v), "Set %q", k)
	}

	for k, v := range values {
		got, ok := store.Get(k)
		require.True(t, ok, "expected value for %q", k)
		assert.Equal(t, v, got, "value for %q", k)
	}

	var want []string
	for k := range values {
		want = append(want, k)
	}
	keys := store.Keys()
	sort.Strings(want)
	sort.Strings(keys)
	assert.Equal(t, want, keys, "no keys may be split or added")
}

func testDeleteAndKeys(t *testing.T, store Store) {
	assert.Empty(t, store.Keys())

	require.NoError(t, store.Set("alice_Org1", "a"))
	require.NoError(t, store.Set("bob_Org1", "b"))
	assert.ElementsMatch(t, []string{"alice_Org1", "bob_Org1"}, store.Keys())

	require.NoError(t, store.Delete("alice_Org1"))
	assert.False(t, store.Has("alice_Org1"))
	assert.Equal(t, []string{"bob_Org1"}, store.Keys())

	require.NoError(t, store.Delete("absent"), "deleting an absent key")
	v, ok := store.Get("bob_Org1")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}
