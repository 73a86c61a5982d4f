// SPDX-License-Identifier: MIT

package table_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsci/dynamic"
	"github.com/katalvlaran/lvlsci/matrix"
	"github.com/katalvlaran/lvlsci/table"
)

// writeTemp drops content into a fresh temp file and returns its path.
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// requireTable asserts the dynamic result decodes to the expected rows.
func requireTable(t *testing.T, v dynamic.Value, want [][]float64) {
	t.Helper()
	m, err := matrix.FromDynamic(v)
	require.NoError(t, err)
	require.Equal(t, len(want), m.Rows())
	require.Equal(t, len(want[0]), m.Cols())
	for i, row := range want {
		for j, cell := range row {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, cell, got, "cell (%d,%d)", i, j)
		}
	}
}

func TestRead_CommaSeparatedFile(t *testing.T) {
	path := writeTemp(t, "plain.csv", "1,2,3\n4,5,6\n")

	v, err := table.Read(context.Background(), path)
	require.NoError(t, err)
	requireTable(t, v, [][]float64{{1, 2, 3}, {4, 5, 6}})
}

func TestRead_SniffsAlternateDelimiters(t *testing.T) {
	for name, content := range map[string]string{
		"semicolon": "1.5;2.5\n3.5;4.5\n",
		"tab":       "1.5\t2.5\n3.5\t4.5\n",
		"pipe":      "1.5|2.5\n3.5|4.5\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeTemp(t, name+".txt", content)

			v, err := table.Read(context.Background(), path)
			require.NoError(t, err)
			requireTable(t, v, [][]float64{{1.5, 2.5}, {3.5, 4.5}})
		})
	}
}

func TestRead_SkipsLeadingHeaderRows(t *testing.T) {
	path := writeTemp(t, "headed.csv", "x,y,z\n-- generated --,,\n1,2,3\n4,5,6\n")

	v, err := table.Read(context.Background(), path)
	require.NoError(t, err)
	requireTable(t, v, [][]float64{{1, 2, 3}, {4, 5, 6}})
}

func TestRead_NonNumericCellAfterDataFails(t *testing.T) {
	path := writeTemp(t, "bad.csv", "1,2\n3,oops\n")

	_, err := table.Read(context.Background(), path)
	require.ErrorIs(t, err, table.ErrRead)
	require.Contains(t, err.Error(), "non-numeric")
}

func TestRead_RaggedRowsFail(t *testing.T) {
	path := writeTemp(t, "ragged.csv", "1,2,3\n4,5\n")

	_, err := table.Read(context.Background(), path)
	require.ErrorIs(t, err, table.ErrRead)
	require.Contains(t, err.Error(), "columns")
}

func TestRead_AllHeaderFileFails(t *testing.T) {
	path := writeTemp(t, "empty.csv", "only,header,rows\nno,data,here\n")

	_, err := table.Read(context.Background(), path)
	require.ErrorIs(t, err, table.ErrRead)
	require.Contains(t, err.Error(), "empty table")
}

func TestRead_MissingFileFails(t *testing.T) {
	_, err := table.Read(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.ErrorIs(t, err, table.ErrRead)
	require.ErrorIs(t, err, os.ErrNotExist) // cause preserved unchanged
}

func TestRead_HTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("a,b\n1,2\n3,4\n"))
	}))
	defer srv.Close()

	v, err := table.Read(context.Background(), srv.URL, table.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	requireTable(t, v, [][]float64{{1, 2}, {3, 4}})
}

func TestRead_HTTPErrorStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := table.Read(context.Background(), srv.URL, table.WithHTTPClient(srv.Client()))
	require.ErrorIs(t, err, table.ErrRead)
	require.Contains(t, err.Error(), "404")
}

func TestRead_ContextCancellationFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done() // hold until the client gives up
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := table.Read(ctx, srv.URL, table.WithHTTPClient(srv.Client()))
	require.ErrorIs(t, err, table.ErrRead)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRead_ResultFeedsMatrixPipeline(t *testing.T) {
	path := writeTemp(t, "pipeline.csv", "x,y\n1,10\n2,20\n3,30\n")

	v, err := table.Read(context.Background(), path)
	require.NoError(t, err)

	m, err := matrix.FromDynamic(v)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
}
