package proposals

// The page library: declarative content per page type. Adding a layout is a
// data change, not a rendering-code change. Every fragment is plain markup
// with {{token}} placeholders resolved by the document renderer.

type pageLayout struct {
	Title   string
	Content string
}

var pageLibrary = map[PageType]pageLayout{
	PageCover: {
		Title: "Cover",
		Content: `<div class="cover">
  <h1>{{proposalTitle}}</h1>
  <p class="client">Submitted to {{clientName}}</p>
  <p class="date">{{preparedDate}}</p>
</div>`,
	},
	PageObjectives: {
		Title: "Objectives",
		Content: `<div class="objectives">
  <p>This engagement for {{clientName}} is structured around the outcomes
  below. Each objective maps to a deliverable in the scope of work.</p>
  <ul>
    <li>Understand the current workflow and its constraints.</li>
    <li>Deliver a solution sized for the agreed budget of {{amount}}.</li>
    <li>Hand over documentation and training on completion.</li>
  </ul>
</div>`,
	},
	PageScope: {
		Title: "Scope of Work",
		Content: `<div class="scope">
  <p>The scope for {{clientName}} covers discovery, build and rollout
  phases. Items outside this scope are quoted separately on request.</p>
</div>`,
	},
	PageCommercials: {
		Title: "Commercials",
		Content: `<div class="commercials">
  <table>
    <tbody>
      {{lineRows}}
    </tbody>
    <tfoot>
      <tr><td>Subtotal</td><td>{{subtotal}}</td></tr>
      <tr><td>CGST ({{taxRate}}% / 2)</td><td>{{cgst}}</td></tr>
      <tr><td>SGST ({{taxRate}}% / 2)</td><td>{{sgst}}</td></tr>
      <tr class="grand"><td>Grand Total</td><td>{{grandTotal}}</td></tr>
    </tfoot>
  </table>
  <p class="validity">Pricing valid until {{validUntil}}.</p>
</div>`,
	},
	PageTimeline: {
		Title: "Timeline",
		Content: `<div class="timeline">
  <p>Work begins within one week of acceptance. Milestones are reviewed
  with {{clientName}} at the end of each phase.</p>
</div>`,
	},
	PageThankYou: {
		Title: "Thank You",
		Content: `<div class="thankyou">
  <h2>Thank you, {{clientName}}</h2>
  <p>We look forward to working with you. This proposal is valid until
  {{validUntil}}.</p>
</div>`,
	},
	PageCustom: {
		Title:   "Custom Page",
		Content: `<div class="custom"></div>`,
	},
}

// defaultPageTypes is the page sequence seeded into a new proposal.
var defaultPageTypes = []PageType{PageCover, PageObjectives, PageScope, PageCommercials, PageTimeline, PageThankYou}

const lineRowContent = `<tr><td>{{description}}</td><td>{{quantity}}</td><td>{{rate}}</td><td>{{amount}}</td></tr>`
