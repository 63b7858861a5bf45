// agentcli: cliente de terminal para probar el recomendador sin abrir
// el frontend. Pega a la API HTTP y pinta el resultado.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/AdiJusic22/AI-agentMovies/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6EC4F4"))

	reasonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F45E6E"))
)

func main() {
	api := flag.String("api", "http://localhost:8080", "base URL de la API")
	name := flag.String("name", "", "nombre de usuario o userId")
	mood := flag.String("mood", "neutral", "ánimo")
	n := flag.Int("n", 10, "cantidad de recomendaciones")
	stats := flag.Bool("stats", false, "mostrar estadísticas en vez de recomendaciones")
	flag.Parse()

	if *name == "" {
		fmt.Println(errorStyle.Render("falta -name"))
		os.Exit(1)
	}

	client := &http.Client{Timeout: 15 * time.Second}

	if *stats {
		showStats(client, *api, *name)
		return
	}
	showRecommendations(client, *api, *name, *mood, *n)
}

func showRecommendations(client *http.Client, api, name, mood string, n int) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("mood", mood)
	q.Set("n", strconv.Itoa(n))

	var items []models.RecItem
	if err := getJSON(client, api+"/recommend?"+q.Encode(), &items); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Recomendaciones para %s (mood: %s)", name, mood)))
	fmt.Println()
	for i, it := range items {
		year := ""
		if it.Year != nil {
			year = fmt.Sprintf(" (%d)", *it.Year)
		}
		fmt.Printf("%2d. %s%s  %s\n", i+1,
			titleStyle.Render(it.Title), year,
			scoreStyle.Render(fmt.Sprintf("[%.2f]", it.Score)))
		fmt.Printf("    %s\n", reasonStyle.Render(it.Reason))
		if it.Description != "" {
			fmt.Printf("    %s\n", reasonStyle.Render(it.Description))
		}
	}
}

func showStats(client *http.Client, api, name string) {
	var st models.UserStats
	if err := getJSON(client, api+"/stats?name="+url.QueryEscape(name), &st); err != nil {
		fmt.Println(errorStyle.Render(err.Error()))
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("Estadísticas de " + st.UserName))
	fmt.Printf("  total: %d | likes: %d | dislikes: %d\n",
		st.TotalFeedback, st.LikedCount, st.DislikedCount)
	if st.FavoriteMood != "" {
		fmt.Printf("  ánimo favorito: %s\n", st.FavoriteMood)
	}
	for mood, count := range st.Moods {
		fmt.Printf("  %s: %d\n", mood, count)
	}
}

func getJSON(client *http.Client, url string, dest any) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("API: %s", apiErr.Error)
		}
		return fmt.Errorf("API: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
