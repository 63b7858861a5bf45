package engine

import (
	"math"
	"runtime"
	"sort"
	"sync"
)

// Neighbor es un vecino de un ítem en el índice de similitud.
type Neighbor struct {
	MovieID int     `json:"movieId"`
	Sim     float64 `json:"sim"`
}

// SimilarityIndex es el KNN item-based con distancia coseno sobre las
// columnas de la PreferenceMatrix. Es de solo lectura: se reconstruye
// entero junto con cada rebuild de la matriz.
type SimilarityIndex struct {
	k         int
	neighbors map[int][]Neighbor
}

// claves empaquetadas para pares (i<j) de columnas
func pairKey(i, j int) uint64 {
	if i > j {
		i, j = j, i
	}
	return (uint64(uint32(i)) << 32) | uint64(uint32(j))
}

func splitPair(k uint64) (int, int) {
	return int(int32(k >> 32)), int(int32(k & 0xffffffff))
}

type partialAcc struct {
	dot  map[uint64]float64 // sum(r_i * r_j) por par co-valorado
	norm map[int]float64    // sum(r^2) por columna
}

func newPartialAcc() *partialAcc {
	return &partialAcc{
		dot:  make(map[uint64]float64, 1<<10),
		norm: make(map[int]float64, 1<<10),
	}
}

func mergeAcc(dst, src *partialAcc) {
	for k, v := range src.dot {
		dst.dot[k] += v
	}
	for i, v := range src.norm {
		dst.norm[i] += v
	}
}

// BuildIndex construye el índice con un pool de workers repartiendo
// filas de usuarios por stride fijo: el worker w procesa las filas
// w, w+workers, w+2·workers, ... y los parciales se fusionan en orden
// de worker. El reparto no depende del scheduler, así que el orden de
// suma en coma flotante es idéntico entre builds y el índice resultante
// también.
func BuildIndex(m *PreferenceMatrix, k, workers int) *SimilarityIndex {
	ix := &SimilarityIndex{k: k, neighbors: make(map[int][]Neighbor)}
	if m.Empty() || k <= 0 {
		return ix
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	rows := len(m.userIDs)
	parts := make([]*partialAcc, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			local := newPartialAcc()
			for row := w; row < rows; row += workers {
				accumulateRow(local, m.rowNonZero(row))
			}
			parts[w] = local
		}(w)
	}
	wg.Wait()

	total := newPartialAcc()
	for _, p := range parts {
		mergeAcc(total, p)
	}

	// cos(i,j) = dot / (||i|| * ||j||); columnas todo-cero quedan sin
	// vecinos (similitud indefinida, no un ranking sin sentido).
	lists := make(map[int][]Neighbor, len(m.itemIDs))
	for key, dot := range total.dot {
		i, j := splitPair(key)
		ni, nj := total.norm[i], total.norm[j]
		if ni == 0 || nj == 0 {
			continue
		}
		sim := dot / (math.Sqrt(ni) * math.Sqrt(nj))
		idI, idJ := m.itemIDs[i], m.itemIDs[j]
		lists[idI] = append(lists[idI], Neighbor{MovieID: idJ, Sim: sim})
		lists[idJ] = append(lists[idJ], Neighbor{MovieID: idI, Sim: sim})
	}

	for itemID, ns := range lists {
		sort.Slice(ns, func(a, b int) bool {
			if ns[a].Sim != ns[b].Sim {
				return ns[a].Sim > ns[b].Sim
			}
			return ns[a].MovieID < ns[b].MovieID
		})
		if len(ns) > k {
			ns = ns[:k]
		}
		ix.neighbors[itemID] = ns
	}

	return ix
}

func accumulateRow(acc *partialAcc, rated map[int]float64) {
	cols := make([]int, 0, len(rated))
	for c := range rated {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	for _, c := range cols {
		acc.norm[c] += rated[c] * rated[c]
	}
	for a := 0; a < len(cols); a++ {
		for b := a + 1; b < len(cols); b++ {
			acc.dot[pairKey(cols[a], cols[b])] += rated[cols[a]] * rated[cols[b]]
		}
	}
}

// Neighbors devuelve hasta k vecinos del ítem, similitud descendente y
// movieId ascendente como desempate. Vector todo-cero o ítem desconocido
// devuelven slice vacío.
func (ix *SimilarityIndex) Neighbors(itemID, k int) []Neighbor {
	ns := ix.neighbors[itemID]
	if k > len(ns) {
		k = len(ns)
	}
	if k <= 0 {
		return nil
	}
	out := make([]Neighbor, k)
	copy(out, ns[:k])
	return out
}
